package ioc

import (
	"testing"

	"github.com/olegtuta/refactoring/internal/service/i18n"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCatalog(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  i18n.Catalog
		want i18n.Catalog
	}{
		{
			name: "key 被转成小写",
			raw: i18n.Catalog{
				"en": {
					"newpositionadded":              "New position added",
					"complaintemployeeemailsubject": "Complaint #COMPLAINT_NUMBER#",
				},
			},
			want: i18n.Catalog{
				"en": {
					i18n.KeyNewPositionAdded:     "New position added",
					i18n.KeyEmployeeEmailSubject: "Complaint #COMPLAINT_NUMBER#",
				},
			},
		},
		{
			name: "未知 key 原样保留",
			raw: i18n.Catalog{
				"ru": {"customGreeting": "Привет"},
			},
			want: i18n.Catalog{
				"ru": {"customGreeting": "Привет"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, normalizeCatalog(tc.raw))
		})
	}
}
