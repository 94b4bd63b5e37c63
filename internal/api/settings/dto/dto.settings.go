// Package settingsdto - các cấu trúc input cho domain settings.
package settingsdto

// SettingsUpdateInput dữ liệu cập nhật cấu hình giao diện (field mask).
// Chỉ các field có mặt trong body mới được ghi đè. Các field text hiển thị
// trên trang public nên phải qua no_xss.
type SettingsUpdateInput struct {
	LogoURL            *string `json:"logoUrl,omitempty"`
	CompanyName        *string `json:"companyName,omitempty" validate:"omitempty,no_xss"`
	LoginBackgroundURL *string `json:"loginBackgroundUrl,omitempty"`
	BannerURL          *string `json:"bannerUrl,omitempty"`
	LoginTitle         *string `json:"loginTitle,omitempty" validate:"omitempty,no_xss"`
	LoginSubtitle      *string `json:"loginSubtitle,omitempty" validate:"omitempty,no_xss"`
	HeroTitle          *string `json:"heroTitle,omitempty" validate:"omitempty,no_xss"`
	HeroSubtitle       *string `json:"heroSubtitle,omitempty" validate:"omitempty,no_xss"`
	Theme              *string `json:"theme,omitempty" validate:"omitempty,oneof=dark light"`
}
