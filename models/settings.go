package models

import "time"

// Fixed document ids for the two settings singletons.
const (
	AppSettingsID   = "app_settings"
	StoreSettingsID = "store_settings"
)

// AppSettings is a single-row table keyed by AppSettingsID.
type AppSettings struct {
	ID         string    `gorm:"primary_key" json:"id"`
	ShowSignUp bool      `gorm:"default:true" json:"showSignUp"`
	UpdatedAt  time.Time `json:"updatedAt"`
	UpdatedBy  string    `json:"updatedBy"`
}

func (AppSettings) TableName() string {
	return "app_settings"
}

// StoreSettings is the store profile: a single row of optional contact,
// address, hours, social and SEO fields keyed by StoreSettingsID. The admin
// UI edits it one tab at a time, so updates are always partial.
type StoreSettings struct {
	ID string `gorm:"primary_key" json:"id"`

	// Store info
	StoreName        string `json:"storeName"`
	StoreNameHindi   string `json:"storeNameHindi"`
	Tagline          string `json:"tagline"`
	TaglineHindi     string `json:"taglineHindi"`
	Description      string `json:"description"`
	DescriptionHindi string `json:"descriptionHindi"`
	FreePickup       bool   `json:"freePickup"`
	CashOnPickup     bool   `json:"cashOnPickup"`
	OnlineOrdering   bool   `json:"onlineOrdering"`

	// Contact
	PrimaryPhone    string `json:"primaryPhone"`
	SecondaryPhone  string `json:"secondaryPhone"`
	WhatsappNumber  string `json:"whatsappNumber"`
	Email           string `json:"email"`
	Website         string `json:"website"`
	GSTNumber       string `gorm:"column:gst_number" json:"gstNumber"`
	LicenseNumber   string `json:"licenseNumber"`
	EstablishedYear int    `json:"establishedYear"`

	// Address
	Address      string `json:"address"`
	AddressHindi string `json:"addressHindi"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Landmark     string `json:"landmark"`

	// Hours
	MondayToSaturday string `json:"mondayToSaturday"`
	Sunday           string `json:"sunday"`
	HolidayHours     string `json:"holidayHours"`

	// Social
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`

	// SEO
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	Keywords        StringList `gorm:"type:text" json:"keywords"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

func (StoreSettings) TableName() string {
	return "store_settings"
}
