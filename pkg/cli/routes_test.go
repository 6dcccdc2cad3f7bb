package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	controller "github.com/m-mizutani/ekshello/pkg/controller/http"
	"github.com/m-mizutani/gt"
)

func TestPrintRoutes(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	err := printRoutes(&buf, []controller.Route{
		{Method: "GET", Path: "/"},
		{Method: "GET", Path: "/health"},
	})
	gt.NoError(t, err)
	gt.Equal(t, buf.String(), "GET     /\nGET     /health\n")
}

func TestHealthURL(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{target: "localhost:8080", want: "http://localhost:8080/health"},
		{target: "http://10.0.0.1:8080", want: "http://10.0.0.1:8080/health"},
		{target: "https://hello.example.com/", want: "https://hello.example.com/health"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			gt.Equal(t, healthURL(tt.target), tt.want)
		})
	}
}
