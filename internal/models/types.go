package models

import "time"

// Kind is one of the exported data categories. Each kind has its own bucket
// sequence and storage directory.
type Kind string

const (
	KindPower  Kind = "power"
	KindEnergy Kind = "energy"
	KindSoe    Kind = "soe"
)

// Product is one entry from the account's product list. Only battery and
// solar products carry an energy site worth exporting.
type Product struct {
	EnergySiteID int64  `json:"energy_site_id"`
	ResourceType string `json:"resource_type"`
	SiteName     string `json:"site_name,omitempty"`
}

func (p Product) IsEnergySite() bool {
	return p.ResourceType == "battery" || p.ResourceType == "solar"
}

// SiteConfig holds the per-site settings the exporter needs: when the site
// came online and which timezone its calendar days are aligned to. The
// timezone may be absent, in which case it is derived from the installation
// date's UTC offset.
type SiteConfig struct {
	InstallationDate     time.Time
	InstallationTimeZone string
}
