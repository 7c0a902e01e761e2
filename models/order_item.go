package models

// OrderItem links an order to one of its items. The composite primary key
// keeps each (order, item) pair unique; links go away with their order but
// never take the item with them.
type OrderItem struct {
	OrderID uint `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order  Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemID uint  `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	Item   Item  `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"item"`
}
