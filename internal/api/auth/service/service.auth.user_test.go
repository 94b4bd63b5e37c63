// Package authsvc - Test logic khớp tài khoản tích hợp sẵn (không cần DB).
package authsvc

import (
	"testing"

	models "realty_training/internal/api/auth/models"
	"realty_training/config"
)

func testConfig() *config.Configuration {
	return &config.Configuration{
		AdminEmail:          "unbrokerage@realtyonegroupmexico.mx",
		AdminPassword:       "OneVision$07",
		AgentSharedPassword: "AgenteONE13",
	}
}

func TestMatchBuiltInCredentials_Admin(t *testing.T) {
	cfg := testConfig()

	user, ok := matchBuiltInCredentials(cfg, "unbrokerage@realtyonegroupmexico.mx", "OneVision$07")
	if !ok {
		t.Fatal("mật khẩu admin đúng phải khớp tài khoản tích hợp sẵn")
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("Role = %q, muốn %q", user.Role, models.RoleAdmin)
	}
	if user.Name != "Administrador" {
		t.Errorf("Name = %q, muốn Administrador", user.Name)
	}
}

func TestMatchBuiltInCredentials_AgentSharedPassword(t *testing.T) {
	cfg := testConfig()

	user, ok := matchBuiltInCredentials(cfg, "unbrokerage@realtyonegroupmexico.mx", "AgenteONE13")
	if !ok {
		t.Fatal("mật khẩu chung của đại lý phải khớp tài khoản tích hợp sẵn")
	}
	if user.Role != models.RoleUser {
		t.Errorf("Role = %q, muốn %q", user.Role, models.RoleUser)
	}
	if user.Name != "Agente" {
		t.Errorf("Name = %q, muốn Agente", user.Name)
	}
}

func TestMatchBuiltInCredentials_EmailCaseInsensitive(t *testing.T) {
	cfg := testConfig()

	user, ok := matchBuiltInCredentials(cfg, "UNBROKERAGE@REALTYONEGROUPMEXICO.MX", "OneVision$07")
	if !ok {
		t.Fatal("so sánh email phải không phân biệt hoa thường")
	}
	// Email trả về phải được chuẩn hóa về lowercase
	if user.Email != "unbrokerage@realtyonegroupmexico.mx" {
		t.Errorf("Email = %q, muốn lowercase", user.Email)
	}
}

func TestMatchBuiltInCredentials_Rejections(t *testing.T) {
	cfg := testConfig()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"sai mật khẩu", "unbrokerage@realtyonegroupmexico.mx", "wrong"},
		{"sai email", "other@example.com", "OneVision$07"},
		{"mật khẩu rỗng", "unbrokerage@realtyonegroupmexico.mx", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, ok := matchBuiltInCredentials(cfg, c.email, c.password); ok {
				t.Errorf("matchBuiltInCredentials(%q, %q) phải trả về false", c.email, c.password)
			}
		})
	}
}

func TestMatchBuiltInCredentials_NilConfig(t *testing.T) {
	if _, ok := matchBuiltInCredentials(nil, "unbrokerage@realtyonegroupmexico.mx", "OneVision$07"); ok {
		t.Error("config nil phải trả về false, không panic")
	}
}
