package model

import "time"

// Country is a Global South country the blog covers. Reference data,
// seeded once and rarely edited.
type Country struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;size:100;not null;unique" json:"name"`
	Code         string    `gorm:"column:code;size:3;not null;unique" json:"code"`
	FlagURL      string    `gorm:"column:flag_url;size:200" json:"flag_url,omitempty"`
	Region       string    `gorm:"column:region;size:50" json:"region"`
	Population   int64     `gorm:"column:population" json:"population"`
	GDPUSD       int64     `gorm:"column:gdp_usd" json:"gdp_usd"`
	GDPPerCapita float64   `gorm:"column:gdp_per_capita" json:"gdp_per_capita"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Country) TableName() string {
	return "countries"
}

// DevelopmentStatus buckets the country by GDP per capita using the
// World Bank income classification cutoffs.
func (c Country) DevelopmentStatus() string {
	switch {
	case c.GDPPerCapita < 1000:
		return "Low Income"
	case c.GDPPerCapita < 4000:
		return "Lower Middle Income"
	case c.GDPPerCapita < 12000:
		return "Upper Middle Income"
	default:
		return "High Income"
	}
}

// DigitalReadiness is a coarse readiness assessment used by the research
// context builder.
func (c Country) DigitalReadiness() string {
	switch {
	case c.GDPPerCapita > 8000:
		return "High"
	case c.GDPPerCapita > 3000:
		return "Medium"
	default:
		return "Low"
	}
}
