package tui

import (
	"fmt"

	"github.com/MKhiriev/go-cwa-home/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	rows := [][2]string{
		{"Application", "CWA test-result home"},
		{"Version", info.Version},
		{"Date", info.Date},
		{"Commit", info.Commit},
		{"Verification server", serverVersion},
	}

	var body string
	for _, row := range rows {
		body += fmt.Sprintf("%s: %s\n", row[0], valueOrNA(row[1]))
	}

	return renderPage("ABOUT", body, "esc: back")
}
