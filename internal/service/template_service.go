// internal/service/template_service.go
package service

import (
	"sort"
	"strings"
)

// SMS bodies. Placeholders are filled by RenderTemplate.
const (
	AppointmentSMSTemplate = "Hi {name}, your service appointment for {vehicle} has been received. Issue: {issue}. We will call you shortly to confirm."
	SpareSMSTemplate       = "Hi {name}, your spare parts request has been received: {details}. We will contact you soon."
)

// RenderTemplate fills {key} placeholders in one pass, so braces inside
// submitted values are never expanded.
func RenderTemplate(template string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		v := data[k]
		if v == "" {
			v = "N/A"
		}
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
