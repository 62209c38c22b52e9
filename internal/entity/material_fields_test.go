package entity

import "testing"

func TestSortColumn(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"nama_material", "material_description"},
		{"kode_material", "material_sap"},
		{"divisi", "jenisnya"},
		{"kategori", "storeroom"},
		{"satuan", "base_unit_of_measure"},
		{"status", "status"},
		{"lokasi", "lokasi_fisik"},
		{"", "id"},
		{"id; DROP TABLE materials", "id"},
		{"image_url", "id"}, // not sortable
	}

	for _, tc := range cases {
		if got := SortColumn(tc.in); got != tc.want {
			t.Errorf("SortColumn(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUpdateColumn(t *testing.T) {
	column, ok := UpdateColumn("nama_material")
	if !ok || column != "material_description" {
		t.Errorf("UpdateColumn(nama_material) = %q, %v", column, ok)
	}

	if _, ok := UpdateColumn("created_at"); ok {
		t.Error("UpdateColumn should reject names outside the mapping table")
	}
	if _, ok := UpdateColumn("material_description"); ok {
		t.Error("UpdateColumn should reject raw column names")
	}
}

func TestFieldByHeader(t *testing.T) {
	field, ok := FieldByHeader("Material SAP")
	if !ok || field.Column != "material_sap" {
		t.Fatalf("FieldByHeader(Material SAP) = %+v, %v", field, ok)
	}

	m := &Material{}
	field.Assign(m, "SAP-777")
	if m.KodeMaterial != "SAP-777" {
		t.Errorf("Assign wrote %q", m.KodeMaterial)
	}
	if field.Value(m) != "SAP-777" {
		t.Errorf("Value read %q", field.Value(m))
	}

	if _, ok := FieldByHeader("Unknown Column"); ok {
		t.Error("FieldByHeader should reject unknown headers")
	}
}

func TestTransferHeaders(t *testing.T) {
	headers := TransferHeaders()
	want := []string{
		"Division", "Material SAP", "Material Description", "Unit",
		"Status", "System Location", "Physical Location", "Storeroom",
		"Equipment Placement", "Placement Description", "Image URL",
	}
	if len(headers) != len(want) {
		t.Fatalf("got %d headers, want %d", len(headers), len(want))
	}
	for i := range want {
		if headers[i] != want[i] {
			t.Errorf("header[%d] = %q, want %q", i, headers[i], want[i])
		}
	}
}
