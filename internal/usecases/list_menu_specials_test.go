package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/common"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListMenuSpecialsImpl_Query(t *testing.T) {
	specials := []domain.MenuSpecial{
		{ID: 3, RestaurantID: 2, Name: "Mushroom Risotto", PriceINR: 850, DietaryType: domain.DietaryPreference_Vegetarian},
	}

	tests := map[string]struct {
		filter          domain.MenuSpecialFilter
		setExpectations func(repo *domain.MockMenuSpecialRepository)
		expected        []domain.MenuSpecial
		expectedErr     error
	}{
		"empty-preference-means-none": {
			filter: domain.MenuSpecialFilter{},
			setExpectations: func(repo *domain.MockMenuSpecialRepository) {
				repo.EXPECT().ListMenuSpecials(mock.Anything, domain.MenuSpecialFilter{
					Dietary: domain.DietaryPreference_None,
				}).Return(specials, nil)
			},
			expected: specials,
		},
		"preference-is-normalized": {
			filter: domain.MenuSpecialFilter{Dietary: " Vegetarian ", RestaurantID: common.Ptr(2)},
			setExpectations: func(repo *domain.MockMenuSpecialRepository) {
				repo.EXPECT().ListMenuSpecials(mock.Anything, domain.MenuSpecialFilter{
					Dietary:      domain.DietaryPreference_Vegetarian,
					RestaurantID: common.Ptr(2),
				}).Return(specials, nil)
			},
			expected: specials,
		},
		"unknown-preference": {
			filter:      domain.MenuSpecialFilter{Dietary: "keto"},
			expectedErr: domain.NewValidationErr("dietary_preference must be one of none, vegetarian, vegan, gluten-free, non-vegetarian"),
		},
		"repository-error": {
			filter: domain.MenuSpecialFilter{Dietary: domain.DietaryPreference_Vegan},
			setExpectations: func(repo *domain.MockMenuSpecialRepository) {
				repo.EXPECT().ListMenuSpecials(mock.Anything, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockMenuSpecialRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			uc := NewListMenuSpecialsImpl(repo)
			got, gotErr := uc.Query(context.Background(), tt.filter)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitListMenuSpecials_Initialize(t *testing.T) {
	i := InitListMenuSpecials{}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ListMenuSpecials]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
