package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SocialLinks groups the restaurant's social media URLs.
type SocialLinks struct {
	Facebook  string `bson:"facebook" json:"facebook"`
	Instagram string `bson:"instagram" json:"instagram"`
	Twitter   string `bson:"twitter" json:"twitter"`
}

// SiteSettings is a singleton document. It is always replaced wholesale: the
// admin settings form submits the full object, never a field-level patch.
type SiteSettings struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PhoneNumber        string             `bson:"phoneNumber" json:"phoneNumber"`
	Address            string             `bson:"address" json:"address"`
	OpeningHoursWeek   string             `bson:"openingHoursWeek" json:"openingHoursWeek"`
	OpeningHoursSunday string             `bson:"openingHoursSunday" json:"openingHoursSunday"`
	SocialLinks        SocialLinks        `bson:"socialLinks" json:"socialLinks"`
	AboutImage         string             `bson:"aboutImage,omitempty" json:"aboutImage,omitempty"`
}
