package models

// PricingBreakdown itemizes a booking's charge. TotalAmount is always
// recomputed from its inputs, never stored independently of them.
type PricingBreakdown struct {
	BasePrice       float64 `bson:"base_price" json:"base_price"`
	EquipmentRental float64 `bson:"equipment_rental" json:"equipment_rental"`
	Taxes           float64 `bson:"taxes" json:"taxes"` // 18% of base + equipment
	Discount        float64 `bson:"discount" json:"discount"`
	TotalAmount     float64 `bson:"total_amount" json:"total_amount"`
}

// EquipmentSelection is one requested rental line on a booking quote.
type EquipmentSelection struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
