package impl

import (
	"cmp"
	"slices"
	"strings"

	"shiptrack/internal/domain/entity"
)

// Project filters, sorts and pages items for the dashboard table. It never
// mutates items.
func Project(items []entity.Shipment, query entity.ViewQuery) *entity.Page {
	text := strings.ToLower(strings.TrimSpace(query.Text))
	status := strings.TrimSpace(query.Status)

	filtered := make([]entity.Shipment, 0, len(items))
	for i := range items {
		if text != "" && !strings.Contains(strings.ToLower(items[i].SearchText()), text) {
			continue
		}
		if status != "" && items[i].Status != status {
			continue
		}
		filtered = append(filtered, items[i])
	}

	key := query.SortKey
	if key == "" {
		key = entity.DefaultSortKey
	}
	asc := query.SortDir == entity.SortAsc
	slices.SortStableFunc(filtered, func(a, b entity.Shipment) int {
		c := compareField(a, b, key)
		if !asc {
			c = -c
		}

		return c
	})

	pageIndex := max(query.PageIndex, 0)
	total := len(filtered)
	start := pageIndex * entity.PageSize
	end := min(start+entity.PageSize, total)

	page := &entity.Page{
		Items:     []entity.Shipment{},
		Total:     total,
		PageIndex: pageIndex,
		HasPrev:   pageIndex > 0,
		HasNext:   end < total,
	}
	if start < total {
		page.Items = make([]entity.Shipment, 0, end-start)
		for i := start; i < end; i++ {
			page.Items = append(page.Items, filtered[i].Clone())
		}
	}

	return page
}

// compareField orders by one top-level field. Unknown fields and missing
// numeric values compare equal so the stable sort keeps input order.
func compareField(a, b entity.Shipment, key string) int {
	as, an, numeric, aok := a.FieldValue(key)
	bs, bn, _, bok := b.FieldValue(key)
	if !aok || !bok {
		return 0
	}
	if numeric {
		return cmp.Compare(an, bn)
	}

	return strings.Compare(as, bs)
}
