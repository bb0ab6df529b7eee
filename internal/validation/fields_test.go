package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montagemotion/backoffice/internal/models"
)

func TestValidateFields(t *testing.T) {
	blogs, err := models.CollectionByName("blogs")
	require.NoError(t, err)

	seo, err := models.CollectionByName("seo")
	require.NoError(t, err)

	tests := []struct {
		fields  map[string]string
		name    string
		errMsg  string
		col     models.Collection
		wantErr bool
	}{
		{
			name: "valid blog post",
			col:  blogs,
			fields: map[string]string{
				"title":             "A",
				"short_description": "B",
				"description":       "C",
				"image":             "http://x/y.jpg",
				"alt":               "z",
			},
		},
		{
			name: "valid blog post with category",
			col:  blogs,
			fields: map[string]string{
				"title":             "Premiere",
				"short_description": "Teaser",
				"description":       "Full text",
				"category":          "showcase",
				"image":             "/uploads/a.png",
			},
		},
		{
			name: "missing required field",
			col:  blogs,
			fields: map[string]string{
				"title":       "Premiere",
				"description": "Full text",
				"image":       "/uploads/a.png",
			},
			wantErr: true,
			errMsg:  `field "short_description": is required`,
		},
		{
			name: "required field is whitespace only",
			col:  blogs,
			fields: map[string]string{
				"title":             "   ",
				"short_description": "B",
				"description":       "C",
				"image":             "/uploads/a.png",
			},
			wantErr: true,
			errMsg:  `field "title": is required`,
		},
		{
			name: "unknown field rejected",
			col:  blogs,
			fields: map[string]string{
				"title":             "Premiere",
				"short_description": "B",
				"description":       "C",
				"image":             "/uploads/a.png",
				"views":             "100",
			},
			wantErr: true,
			errMsg:  `field "views"`,
		},
		{
			name: "enum value outside option set",
			col:  blogs,
			fields: map[string]string{
				"title":             "Premiere",
				"short_description": "B",
				"description":       "C",
				"category":          "vlog",
				"image":             "/uploads/a.png",
			},
			wantErr: true,
			errMsg:  "must be one of",
		},
		{
			name: "valid robots directive",
			col:  seo,
			fields: map[string]string{
				"page":        "home",
				"title":       "Montage Motion",
				"description": "Video production studio",
				"robots":      "index,follow",
			},
		},
		{
			name: "invalid robots directive",
			col:  seo,
			fields: map[string]string{
				"page":        "home",
				"title":       "Montage Motion",
				"description": "Video production studio",
				"robots":      "follow,index",
			},
			wantErr: true,
			errMsg:  `field "robots"`,
		},
		{
			name: "field exceeds max length",
			col:  blogs,
			fields: map[string]string{
				"title":             "Premiere",
				"short_description": "B",
				"description":       strings.Repeat("a", MaxFieldLen+1),
				"image":             "/uploads/a.png",
			},
			wantErr: true,
			errMsg:  "exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFields(tt.col, tt.fields)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				// Ошибки валидации всегда привязаны к полю
				var fieldErr *FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.NotEmpty(t, fieldErr.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
