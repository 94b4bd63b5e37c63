package router

import "testing"

// Các config generic CRUD phải tắt những route đi vòng qua logic domain:
// batch insert/upsert bỏ qua validate nguồn video và hash password,
// delete theo filter bỏ qua cascade, upsert setting bỏ qua cache.

func TestCatalogWriteConfigChanRouteVuotCascade(t *testing.T) {
	c := CatalogWriteConfig
	if c.InsMany || c.Upsert || c.UpsMany {
		t.Error("catalog: batch insert/upsert phải bị tắt, chúng bỏ qua validate nguồn video")
	}
	if c.DelOne || c.DelMany || c.FindDel {
		t.Error("catalog: delete theo filter phải bị tắt, chỉ delete-by-id mới cascade")
	}
	if !c.InsOne || !c.DelById {
		t.Error("catalog: insert-one và delete-by-id phải bật, handler domain ghi đè hai route này")
	}
}

func TestAccountWriteConfigKhongNhanPasswordPlain(t *testing.T) {
	c := AccountWriteConfig
	if c.InsMany || c.Upsert || c.UpsMany {
		t.Error("user: batch insert/upsert phải bị tắt, chúng không hash password")
	}
	if c.UpdOne || c.UpdMany || c.UpdById || c.FindUpd {
		t.Error("user: các route update generic phải bị tắt, chúng không hash password")
	}
	if !c.InsOne {
		t.Error("user: insert-one phải bật, handler ghi đè để hash password")
	}
}

func TestSingletonConfigChiDocQuaGeneric(t *testing.T) {
	c := SingletonConfig
	if c.Upsert || c.UpsMany || c.InsOne || c.UpdOne || c.UpdById || c.FindUpd {
		t.Error("setting: mọi route ghi generic phải bị tắt, ghi chỉ qua PUT /settings để cache được cập nhật")
	}
	if !c.FindOne {
		t.Error("setting: find-one phải bật")
	}
}

func TestReadOnlyConfigKhongCoGhi(t *testing.T) {
	c := ReadOnlyConfig
	if c.InsOne || c.InsMany || c.UpdOne || c.UpdMany || c.UpdById || c.FindUpd ||
		c.DelOne || c.DelMany || c.DelById || c.FindDel || c.Upsert || c.UpsMany {
		t.Error("read-only: không route ghi nào được bật")
	}
}
