package global

import "testing"

// Struct mẫu mang các tag custom validator mà DTO của các domain dùng
type sampleInput struct {
	Title    string `validate:"required,no_xss"`
	Password string `validate:"omitempty,strong_password"`
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	cases := []struct {
		name  string
		title string
		ok    bool
	}{
		{"text thường", "Técnicas de Venta", true},
		{"tiếng Việt có dấu", "Đàm phán và chốt giao dịch", true},
		{"script tag", `<script>alert(1)</script>`, false},
		{"javascript URI", "javascript:alert(1)", false},
		{"event handler", `x" onerror=alert(1)`, false},
		{"iframe", `<iframe src="//evil">`, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate.Struct(sampleInput{Title: c.title})
			if c.ok && err != nil {
				t.Errorf("title %q phải hợp lệ, nhận lỗi: %v", c.title, err)
			}
			if !c.ok && err == nil {
				t.Errorf("title %q phải bị chặn bởi no_xss", c.title)
			}
		})
	}
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"đủ 3 nhóm hoa thường số", "AgenteONE13", true},
		{"đủ 4 nhóm", "OneVision$07", true},
		{"quá ngắn", "Ab1", false},
		{"chỉ chữ thường", "solominusculas", false},
		{"chỉ hai nhóm", "solominusculas1", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate.Struct(sampleInput{Title: "ok", Password: c.password})
			if c.ok && err != nil {
				t.Errorf("password %q phải hợp lệ, nhận lỗi: %v", c.password, err)
			}
			if !c.ok && err == nil {
				t.Errorf("password %q phải bị chặn bởi strong_password", c.password)
			}
		})
	}
}
