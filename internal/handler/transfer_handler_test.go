package handler

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/abyansyah052/deploytps/internal/service"
	"github.com/abyansyah052/deploytps/internal/testutil"
)

func TestTemplateDownload(t *testing.T) {
	h := &TransferHandler{
		transfers: service.NewTransferService(nil),
		logger:    zap.NewNop(),
	}
	r := testutil.SetupRouter()
	r.GET("/api/materials/template", h.Template)

	w := testutil.DoRequest(r, http.MethodGet, "/api/materials/template", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "material_import_template.xlsx") {
		t.Errorf("content disposition = %q", cd)
	}

	// The streamed body must still be a complete workbook.
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("downloaded template does not parse: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Materials")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 || rows[0][0] != "Division" {
		t.Errorf("template content = %v", rows)
	}
}
