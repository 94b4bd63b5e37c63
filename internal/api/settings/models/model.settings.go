// Package models - model cấu hình giao diện nền tảng (Settings).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettingsKeyPlatform là key của document settings duy nhất
const SettingsKeyPlatform = "platform"

// Settings là cấu hình giao diện của nền tảng, collection chỉ giữ một
// document định danh bằng Key.
type Settings struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key                string             `json:"key" bson:"key" index:"unique"`
	LogoURL            string             `json:"logoUrl" bson:"logoUrl"`
	CompanyName        string             `json:"companyName" bson:"companyName" default:"Realty ONE Group Mexico"`
	LoginBackgroundURL string             `json:"loginBackgroundUrl" bson:"loginBackgroundUrl"`
	BannerURL          string             `json:"bannerUrl" bson:"bannerUrl"`
	LoginTitle         string             `json:"loginTitle" bson:"loginTitle" default:"Iniciar Sesión"`
	LoginSubtitle      string             `json:"loginSubtitle" bson:"loginSubtitle" default:"Accede a tu plataforma de capacitación inmobiliaria"`
	HeroTitle          string             `json:"heroTitle" bson:"heroTitle" default:"Plataforma de Capacitación Inmobiliaria"`
	HeroSubtitle       string             `json:"heroSubtitle" bson:"heroSubtitle" default:"Explora nuestro contenido educativo especializado"`
	Theme              string             `json:"theme" bson:"theme" default:"dark"`
	CreatedAt          int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64              `json:"updatedAt" bson:"updatedAt"`
}

// DefaultSettings trả về cấu hình mặc định của nền tảng
func DefaultSettings() Settings {
	return Settings{
		Key:           SettingsKeyPlatform,
		CompanyName:   "Realty ONE Group Mexico",
		LoginTitle:    "Iniciar Sesión",
		LoginSubtitle: "Accede a tu plataforma de capacitación inmobiliaria",
		HeroTitle:     "Plataforma de Capacitación Inmobiliaria",
		HeroSubtitle:  "Explora nuestro contenido educativo especializado",
		Theme:         "dark",
	}
}
