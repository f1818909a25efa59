package sequential

import (
	"testing"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/service/provider"
	providermocks "github.com/olegtuta/refactoring/internal/service/provider/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSelector_Next(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := providermocks.NewMockProvider(ctrl)
	second := providermocks.NewMockProvider(ctrl)
	builder := NewSelectorBuilder([]provider.Provider{first, second})
	msg := domain.Message{Channel: domain.ChannelEmail}

	s, err := builder.Build()
	require.NoError(t, err)

	p, err := s.Next(t.Context(), msg)
	require.NoError(t, err)
	assert.Same(t, first, p)

	p, err = s.Next(t.Context(), msg)
	require.NoError(t, err)
	assert.Same(t, second, p)

	_, err = s.Next(t.Context(), msg)
	assert.ErrorIs(t, err, errs.ErrNoAvailableProvider)

	// 每次 Build 都从第一个供应商开始
	s, err = builder.Build()
	require.NoError(t, err)
	p, err = s.Next(t.Context(), msg)
	require.NoError(t, err)
	assert.Same(t, first, p)
}
