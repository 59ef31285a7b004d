package therapist

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Location struct {
	Address string   `gorm:"column:address" json:"address,omitempty" yaml:"address"`
	City    string   `gorm:"column:city;index" json:"city,omitempty" yaml:"city"`
	State   string   `gorm:"column:state;index" json:"state,omitempty" yaml:"state"`
	ZipCode string   `gorm:"column:zip_code;index" json:"zipCode,omitempty" yaml:"zipCode"`
	Country string   `gorm:"column:country;not null;default:'India'" json:"country" yaml:"country"`
	Lat     *float64 `gorm:"column:lat" json:"lat,omitempty" yaml:"lat"`
	Lng     *float64 `gorm:"column:lng" json:"lng,omitempty" yaml:"lng"`
}

type Pricing struct {
	Min      int    `gorm:"column:min;not null" json:"min" yaml:"min"`
	Max      int    `gorm:"column:max;not null" json:"max" yaml:"max"`
	Currency string `gorm:"column:currency;not null;default:'USD'" json:"currency" yaml:"currency"`
}

type Rating struct {
	Average float64 `gorm:"column:average;not null;default:0;index" json:"average" yaml:"average"`
	Count   int     `gorm:"column:count;not null;default:0" json:"count" yaml:"count"`
}

type Qualification struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Year        int    `json:"year" yaml:"year"`
}

type Therapist struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" yaml:"-"`
	Name  string    `gorm:"column:name;not null" json:"name" yaml:"name"`
	Email string    `gorm:"column:email;not null;uniqueIndex" json:"email" yaml:"email"`
	Phone string    `gorm:"column:phone;not null" json:"phone" yaml:"phone"`
	Type  string    `gorm:"column:type;not null;index" json:"type" yaml:"type"`

	Specializations datatypes.JSONSlice[string]        `gorm:"column:specializations" json:"specializations" yaml:"specializations"`
	Qualifications  datatypes.JSONSlice[Qualification] `gorm:"column:qualifications" json:"qualifications,omitempty" yaml:"qualifications"`
	SessionMode     datatypes.JSONSlice[string]        `gorm:"column:session_mode" json:"sessionMode" yaml:"sessionMode"`
	Languages       datatypes.JSONSlice[string]        `gorm:"column:languages" json:"languages" yaml:"languages"`

	Bio           string `gorm:"column:bio;type:text" json:"bio,omitempty" yaml:"bio"`
	Experience    int    `gorm:"column:experience;not null" json:"experience" yaml:"experience"`
	LicenseNumber string `gorm:"column:license_number;not null" json:"licenseNumber" yaml:"licenseNumber"`
	ProfileImage  string `gorm:"column:profile_image;not null;default:'default-therapist.png'" json:"profileImage" yaml:"profileImage"`

	Location Location `gorm:"embedded;embeddedPrefix:location_" json:"location" yaml:"location"`
	Pricing  Pricing  `gorm:"embedded;embeddedPrefix:pricing_" json:"pricing" yaml:"pricing"`
	Rating   Rating   `gorm:"embedded;embeddedPrefix:rating_" json:"rating" yaml:"rating"`

	Verified bool `gorm:"column:verified;not null;default:false" json:"verified" yaml:"verified"`
	IsActive bool `gorm:"column:is_active;not null;default:true;index" json:"isActive" yaml:"isActive"`

	CreatedAt time.Time      `gorm:"not null" json:"createdAt" yaml:"-"`
	UpdatedAt time.Time      `gorm:"not null" json:"updatedAt" yaml:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" yaml:"-"`
}

func (Therapist) TableName() string { return "therapist" }

func (t *Therapist) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

var Types = []string{
	"Psychologist",
	"Psychiatrist",
	"Psychotherapist",
	"Counselor",
	"Clinical Psychologist",
	"Licensed Clinical Social Worker (LCSW)",
	"Marriage & Family Therapist",
	"Substance Abuse Counselor",
	"Cognitive Behavioral Therapist",
	"Trauma Therapist",
	"Child & Adolescent Therapist",
	"Couples Therapist",
}

var Specializations = []string{
	"Anxiety",
	"Depression",
	"Stress Management",
	"Relationship Issues",
	"Trauma & PTSD",
	"Addiction",
	"Eating Disorders",
	"OCD",
	"Bipolar Disorder",
	"Grief & Loss",
	"Self-Esteem",
	"Career Counseling",
	"Family Issues",
	"Anger Management",
}

var SessionModes = []string{"In-Person", "Online", "Both"}
