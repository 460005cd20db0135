package impl

import (
	"fmt"
	"testing"

	"shiptrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func trackingNumbers(items []entity.Shipment) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.TrackingNo)
	}

	return out
}

func TestProject_FilterAndSort(t *testing.T) {
	items := []entity.Shipment{
		{ID: "1", TrackingNo: "JP1", Status: "Pending", Origin: "Berlin", UpdatedAt: 300},
		{ID: "2", TrackingNo: "JP2", Status: "In Transit", Origin: "Paris", UpdatedAt: 100},
		{ID: "3", TrackingNo: "JP3", Status: "Pending", Origin: "berlin", UpdatedAt: 200},
	}

	tests := []struct {
		name  string
		query entity.ViewQuery
		want  []string
	}{
		{
			name:  "default sort is updatedAt descending",
			query: entity.ViewQuery{},
			want:  []string{"JP1", "JP3", "JP2"},
		},
		{
			name:  "ascending",
			query: entity.ViewQuery{SortKey: "updatedAt", SortDir: entity.SortAsc},
			want:  []string{"JP2", "JP3", "JP1"},
		},
		{
			name:  "any other direction is descending",
			query: entity.ViewQuery{SortKey: "updatedAt", SortDir: "sideways"},
			want:  []string{"JP1", "JP3", "JP2"},
		},
		{
			name:  "search is case-insensitive substring",
			query: entity.ViewQuery{Text: "BERLIN"},
			want:  []string{"JP1", "JP3"},
		},
		{
			name:  "status filter is exact",
			query: entity.ViewQuery{Status: "Pending"},
			want:  []string{"JP1", "JP3"},
		},
		{
			name:  "status filter does not match case variants",
			query: entity.ViewQuery{Status: "pending"},
			want:  []string{},
		},
		{
			name:  "search and status combine",
			query: entity.ViewQuery{Text: "paris", Status: "Pending"},
			want:  []string{},
		},
		{
			name:  "string key",
			query: entity.ViewQuery{SortKey: "trackingNo", SortDir: entity.SortAsc},
			want:  []string{"JP1", "JP2", "JP3"},
		},
		{
			name:  "unknown key keeps input order",
			query: entity.ViewQuery{SortKey: "colour"},
			want:  []string{"JP1", "JP2", "JP3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Project(items, tt.query)
			assert.Equal(t, tt.want, trackingNumbers(page.Items))
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}

func TestProject_NumericWeightSort(t *testing.T) {
	items := []entity.Shipment{
		{TrackingNo: "A", CargoWeightValue: ptr(9.0)},
		{TrackingNo: "B", CargoWeightValue: ptr(10.0)},
		{TrackingNo: "C", CargoWeightValue: ptr(2.5)},
	}

	page := Project(items, entity.ViewQuery{SortKey: "cargoWeightValue", SortDir: entity.SortAsc})

	assert.Equal(t, []string{"C", "A", "B"}, trackingNumbers(page.Items))
}

func TestProject_StableForEqualKeys(t *testing.T) {
	items := []entity.Shipment{
		{TrackingNo: "A", Status: "Pending", UpdatedAt: 1},
		{TrackingNo: "B", Status: "Pending", UpdatedAt: 1},
		{TrackingNo: "C", Status: "Pending", UpdatedAt: 1},
	}

	for _, dir := range []string{entity.SortAsc, entity.SortDesc} {
		page := Project(items, entity.ViewQuery{SortKey: "status", SortDir: dir})
		assert.Equal(t, []string{"A", "B", "C"}, trackingNumbers(page.Items), dir)
	}
}

func TestProject_Paging(t *testing.T) {
	items := make([]entity.Shipment, 0, 23)
	for i := range 23 {
		items = append(items, entity.Shipment{TrackingNo: fmt.Sprintf("JP%02d", i), UpdatedAt: int64(100 - i)})
	}

	first := Project(items, entity.ViewQuery{PageIndex: 0})
	require.Len(t, first.Items, entity.PageSize)
	assert.Equal(t, "JP00", first.Items[0].TrackingNo)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := Project(items, entity.ViewQuery{PageIndex: 2})
	assert.Equal(t, []string{"JP20", "JP21", "JP22"}, trackingNumbers(last.Items))
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
	assert.Equal(t, 23, last.Total)

	beyond := Project(items, entity.ViewQuery{PageIndex: 7})
	assert.Empty(t, beyond.Items)
	assert.NotNil(t, beyond.Items)
	assert.Equal(t, 23, beyond.Total)
	assert.False(t, beyond.HasNext)

	negative := Project(items, entity.ViewQuery{PageIndex: -3})
	assert.Equal(t, 0, negative.PageIndex)
	assert.Equal(t, "JP00", negative.Items[0].TrackingNo)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	items := []entity.Shipment{
		{TrackingNo: "A", UpdatedAt: 1, CargoWeightValue: ptr(1.0)},
		{TrackingNo: "B", UpdatedAt: 2},
	}

	page := Project(items, entity.ViewQuery{})
	page.Items[1].TrackingNo = "changed"
	*page.Items[1].CargoWeightValue = 99

	assert.Equal(t, "A", items[0].TrackingNo)
	assert.Equal(t, "B", items[1].TrackingNo)
	assert.InDelta(t, 1.0, *items[0].CargoWeightValue, 0)
}

func TestNewTrackingNumber(t *testing.T) {
	now := testNow
	ms := fmt.Sprint(now.UnixMilli())

	tn := NewTrackingNumber(now)

	require.Len(t, tn, 14)
	assert.Equal(t, "JP", tn[:2])
	assert.Equal(t, ms[len(ms)-8:], tn[2:10])
	assert.Regexp(t, `^JP\d{12}$`, tn)
}

func TestFormatStatusTime(t *testing.T) {
	assert.Equal(t, "3/14/2026, 9:30:00 AM", FormatStatusTime("2026-03-14", "09:30"))
	assert.Equal(t, "3/14/2026, 9:05:07 PM", FormatStatusTime("2026-03-14", "21:05:07"))
	assert.Equal(t, "tomorrow noon", FormatStatusTime("tomorrow", "noon"))
	assert.Empty(t, FormatStatusTime("", ""))
}
