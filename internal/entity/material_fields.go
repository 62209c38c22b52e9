package entity

// MaterialField describes one material attribute across its three
// representations: the client-facing JSON name, the database column, and
// the spreadsheet header used by import/export. This table is the single
// source of truth consumed by the list query's sort allow-list, the
// partial-update mapper, and the bulk transfer column mapper.
type MaterialField struct {
	JSON     string
	Column   string
	Header   string // "" when the field has no spreadsheet column
	Sortable bool
	Assign   func(m *Material, v string)
	Value    func(m *Material) string
}

// MaterialFields is ordered; the transfer pipeline writes spreadsheet
// columns in this order.
var MaterialFields = []MaterialField{
	{
		JSON: "divisi", Column: "jenisnya", Header: "Division", Sortable: true,
		Assign: func(m *Material, v string) { m.Divisi = v },
		Value:  func(m *Material) string { return m.Divisi },
	},
	{
		JSON: "kode_material", Column: "material_sap", Header: "Material SAP", Sortable: true,
		Assign: func(m *Material, v string) { m.KodeMaterial = v },
		Value:  func(m *Material) string { return m.KodeMaterial },
	},
	{
		JSON: "nama_material", Column: "material_description", Header: "Material Description", Sortable: true,
		Assign: func(m *Material, v string) { m.NamaMaterial = v },
		Value:  func(m *Material) string { return m.NamaMaterial },
	},
	{
		JSON: "satuan", Column: "base_unit_of_measure", Header: "Unit", Sortable: true,
		Assign: func(m *Material, v string) { m.Satuan = v },
		Value:  func(m *Material) string { return m.Satuan },
	},
	{
		JSON: "status", Column: "status", Header: "Status", Sortable: true,
		Assign: func(m *Material, v string) { m.Status = v },
		Value:  func(m *Material) string { return m.Status },
	},
	{
		JSON: "lokasi_sistem", Column: "lokasi_sistem", Header: "System Location",
		Assign: func(m *Material, v string) { m.LokasiSistem = v },
		Value:  func(m *Material) string { return m.LokasiSistem },
	},
	{
		JSON: "lokasi_fisik", Column: "lokasi_fisik", Header: "Physical Location",
		Assign: func(m *Material, v string) { m.LokasiFisik = v },
		Value:  func(m *Material) string { return m.LokasiFisik },
	},
	{
		JSON: "kategori", Column: "storeroom", Header: "Storeroom", Sortable: true,
		Assign: func(m *Material, v string) { m.Kategori = v },
		Value:  func(m *Material) string { return m.Kategori },
	},
	{
		JSON: "penempatan_pada_alat", Column: "penempatan_pada_alat", Header: "Equipment Placement",
		Assign: func(m *Material, v string) { m.PenempatanPadaAlat = v },
		Value:  func(m *Material) string { return m.PenempatanPadaAlat },
	},
	{
		JSON: "deskripsi_penempatan", Column: "deskripsi_penempatan", Header: "Placement Description",
		Assign: func(m *Material, v string) { m.DeskripsiPenempatan = v },
		Value:  func(m *Material) string { return m.DeskripsiPenempatan },
	},
	{
		JSON: "image_url", Column: "image_url", Header: "Image URL",
		Assign: func(m *Material, v string) { m.ImageURL = v },
		Value:  func(m *Material) string { return m.ImageURL },
	},
}

// SortColumn resolves a client sort field to a database column. The
// allow-list is a hard boundary: anything unrecognized falls back to id.
// "lokasi" is a legacy alias for the physical location column.
func SortColumn(jsonName string) string {
	if jsonName == "lokasi" {
		return "lokasi_fisik"
	}
	for _, f := range MaterialFields {
		if f.Sortable && f.JSON == jsonName {
			return f.Column
		}
	}
	return "id"
}

// UpdateColumn resolves a client field name to its database column for
// partial updates. Unknown names are rejected, never passed through.
func UpdateColumn(jsonName string) (string, bool) {
	for _, f := range MaterialFields {
		if f.JSON == jsonName {
			return f.Column, true
		}
	}
	return "", false
}

// FieldByHeader resolves a spreadsheet header to its field mapping.
func FieldByHeader(header string) (*MaterialField, bool) {
	for i := range MaterialFields {
		if MaterialFields[i].Header == header {
			return &MaterialFields[i], true
		}
	}
	return nil, false
}

// TransferHeaders returns the spreadsheet headers in column order.
func TransferHeaders() []string {
	headers := make([]string, 0, len(MaterialFields))
	for _, f := range MaterialFields {
		if f.Header != "" {
			headers = append(headers, f.Header)
		}
	}
	return headers
}
