package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/asteroids/world"
)

type EntityInfo struct {
	ID       world.EntityId
	Type     world.EntityType
	Position mgl32.Vec2
	Flags    []string
}

// EntityBrowser lists world entities in a sortable, filterable, paged table.
// The selected row is what the inspector shows.
type EntityBrowser struct {
	world              *world.World
	entities           []EntityInfo
	lastGeneration     uint32
	lastLen            int
	sortColumn         int
	sortAscending      bool
	selectedEntityId   world.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(w *world.World, maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		world:              w,
		sortAscending:      true,
		selectedEntityId:   world.InvalidEntityId,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render() {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.refresh()

	filter := eb.filterText
	if imgui.InputTextWithHint("##search", "Search...", &filter, imgui.InputTextFlagsNone, nil) {
		eb.SetFilter(filter)
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.SetFilter("")
	}

	filtered := eb.Filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Flags")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := min(eb.currentPage*eb.maxEntitiesPerPage, len(filtered))
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for _, entity := range filtered[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID.Index()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(entity.Type.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f, %.1f", entity.Position.X(), entity.Position.Y()))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.Flags, ", "))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// refresh rebuilds the row cache when entities were added or the world was regenerated.
// Positions of moving entities are refreshed every call.
func (eb *EntityBrowser) refresh() {
	if eb.entities == nil || eb.lastGeneration != eb.world.Generation() || eb.lastLen != eb.world.Len() {
		eb.rebuild()
		return
	}
	for i := range eb.entities {
		if e, ok := eb.world.Entity(eb.entities[i].ID); ok {
			eb.entities[i].Position = e.Position
		}
	}
}

func (eb *EntityBrowser) rebuild() {
	eb.entities = make([]EntityInfo, 0, eb.world.Len())
	for e := range eb.world.Entities() {
		eb.entities = append(eb.entities, EntityInfo{
			ID:       e.Id,
			Type:     e.Type,
			Position: e.Position,
			Flags:    e.Flags.Names(),
		})
	}
	eb.lastGeneration = eb.world.Generation()
	eb.lastLen = eb.world.Len()
	if _, ok := eb.world.Entity(eb.selectedEntityId); !ok {
		eb.selectedEntityId = world.InvalidEntityId
		eb.currentPage = 0
	}
	eb.sortEntities()
}

// SortBy orders rows by column: 0 id, 1 type, 2 distance from the origin, 3 flags.
func (eb *EntityBrowser) SortBy(column int, ascending bool) {
	eb.sortColumn = column
	eb.sortAscending = ascending
	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	slices.SortStableFunc(eb.entities, func(a, b EntityInfo) int {
		var c int
		switch eb.sortColumn {
		case 1:
			c = cmp.Compare(a.Type, b.Type)
		case 2:
			c = cmp.Compare(a.Position.Len(), b.Position.Len())
		case 3:
			c = cmp.Compare(strings.Join(a.Flags, ","), strings.Join(b.Flags, ","))
		default:
			c = cmp.Compare(a.ID.Index(), b.ID.Index())
		}
		if !eb.sortAscending {
			return -c
		}
		return c
	})
}

// Filtered returns the cached rows matching the filter text by index, type or flag.
func (eb *EntityBrowser) Filtered() []EntityInfo {
	if eb.entities == nil {
		eb.rebuild()
	}
	if eb.filterText == "" {
		return eb.entities
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]EntityInfo, 0, len(eb.entities))
	for _, entity := range eb.entities {
		idStr := fmt.Sprintf("%d", entity.ID.Index())
		typeStr := strings.ToLower(entity.Type.String())
		flagsStr := strings.ToLower(strings.Join(entity.Flags, " "))

		if strings.Contains(idStr, filterLower) ||
			strings.Contains(typeStr, filterLower) ||
			strings.Contains(flagsStr, filterLower) {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}

func (eb *EntityBrowser) SetFilter(text string) {
	eb.filterText = text
	eb.currentPage = 0
}

func (eb *EntityBrowser) Select(id world.EntityId) {
	eb.selectedEntityId = id
}

func (eb *EntityBrowser) GetSelectedEntity() world.EntityId {
	return eb.selectedEntityId
}
