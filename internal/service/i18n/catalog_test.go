package i18n

import (
	"errors"
	"testing"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	repomocks "github.com/olegtuta/refactoring/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCatalog() Catalog {
	return Catalog{
		"en": {
			KeyNewPositionAdded:         "New position added",
			KeyPositionStatusHasChanged: "Status changed from #FROM# to #TO#",
			KeyEmployeeEmailSubject:     "Complaint #COMPLAINT_NUMBER#",
		},
		"ru": {
			KeyNewPositionAdded: "Добавлена новая позиция",
		},
	}
}

func TestCatalogRenderer_Render(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		setting   domain.ResellerSetting
		settErr   error
		key       string
		data      domain.TemplateData
		want      string
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name:      "经销商语言命中",
			setting:   domain.ResellerSetting{ResellerID: 1, Locale: "ru"},
			key:       KeyNewPositionAdded,
			want:      "Добавлена новая позиция",
			assertErr: assert.NoError,
		},
		{
			name:      "经销商语言缺失时回退默认语言",
			setting:   domain.ResellerSetting{ResellerID: 1, Locale: "ru"},
			key:       KeyPositionStatusHasChanged,
			data:      domain.TemplateData{"FROM": "Pending", "TO": "Completed"},
			want:      "Status changed from Pending to Completed",
			assertErr: assert.NoError,
		},
		{
			name:      "未配置语言使用默认语言并替换数字字段",
			setting:   domain.ResellerSetting{ResellerID: 1},
			key:       KeyEmployeeEmailSubject,
			data:      domain.TemplateData{domain.FieldComplaintNumber: "C-5", domain.FieldComplaintID: int64(5)},
			want:      "Complaint C-5",
			assertErr: assert.NoError,
		},
		{
			name:    "消息不存在",
			setting: domain.ResellerSetting{ResellerID: 1, Locale: "ru"},
			key:     "unknown",
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrMessageNotFound)
			},
		},
		{
			name:    "读取经销商配置失败",
			settErr: errors.New("db down"),
			key:     KeyNewPositionAdded,
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorContains(t, err, "db down")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resellers := repomocks.NewMockResellerRepository(ctrl)
			resellers.EXPECT().GetSetting(gomock.Any(), int64(1)).Return(tc.setting, tc.settErr)

			r := NewCatalogRenderer(resellers, testCatalog(), "")
			got, err := r.Render(t.Context(), tc.key, tc.data, 1)
			tc.assertErr(t, err)
			if err != nil {
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}
