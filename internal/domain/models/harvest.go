package models

import "time"

// HarvestTable is the relational table holding harvest sessions.
const HarvestTable = "colheita_cana"

// Efficiency is the three-tier label derived from the loss ratio.
type Efficiency string

const (
	EfficiencyHigh   Efficiency = "High efficiency"
	EfficiencyMedium Efficiency = "Medium efficiency"
	EfficiencyLow    Efficiency = "Low efficiency"
)

// HarvestRecord captures one sugarcane harvest session.
//
// Loss and Efficiency are derived from Area and Volume when the record is
// built. Updating the volume afterwards leaves both fields untouched.
type HarvestRecord struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	Producer     string     `gorm:"column:produtor;not null;index"`
	Area         float64    `gorm:"column:area;not null"`
	Volume       float64    `gorm:"column:volume;not null"`
	Loss         float64    `gorm:"column:perda;not null"`
	Efficiency   Efficiency `gorm:"column:eficiencia;not null"`
	RegisteredAt time.Time  `gorm:"column:data_registro;not null;default:CURRENT_TIMESTAMP"`
}

// TableName pins the gorm table name.
func (HarvestRecord) TableName() string { return HarvestTable }

// HarvestListing is the display projection returned by the list operation.
type HarvestListing struct {
	Producer     string     `gorm:"column:produtor"`
	Area         float64    `gorm:"column:area"`
	Volume       float64    `gorm:"column:volume"`
	LossPct      float64    `gorm:"column:perda_pct"`
	Efficiency   Efficiency `gorm:"column:eficiencia"`
	RegisteredAt time.Time  `gorm:"column:data_registro"`
}
