package crafting

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/ArcPlanner_Go/internal/catalog"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
	"github.com/osse101/ArcPlanner_Go/internal/metrics"
)

// Catalog is the read side of the catalog store needed by the planner
type Catalog interface {
	Snapshot() (catalog.Snapshot, error)
}

// Demand is one equipped root: an item and how many of it are wanted
type Demand struct {
	ItemID   string `json:"item_id" yaml:"item_id" validate:"required,max=128"`
	Quantity int    `json:"quantity" yaml:"quantity" validate:"required,min=1,max=100000"`
}

// Totals summarizes the equipped demands themselves
type Totals struct {
	Items    int     `json:"items"`
	Value    float64 `json:"value"`
	WeightKg float64 `json:"weight_kg"`
}

// Plan is the full planning output for a set of demands
type Plan struct {
	Roots        []*Node             `json:"roots"`
	Requirements []Requirement       `json:"requirements"`
	Sources      map[string][]Source `json:"sources"`
	Totals       Totals              `json:"totals"`
}

// PredecessorInfo describes the tier below an item
type PredecessorInfo struct {
	ItemID         string       `json:"item_id"`
	PredecessorID  string       `json:"predecessor_id,omitempty"`
	HasPredecessor bool         `json:"has_predecessor"`
	Predecessor    *domain.Item `json:"predecessor,omitempty"`
}

// Service defines the interface for crafting cost planning
type Service interface {
	Plan(ctx context.Context, demands []Demand) (*Plan, error)
	BuildTree(ctx context.Context, itemID string, quantity int) (*Node, error)
	Predecessor(ctx context.Context, itemID string) (*PredecessorInfo, error)
}

type service struct {
	catalog  Catalog
	maxDepth int
	now      func() time.Time
}

// NewService creates a new planning service
func NewService(cat Catalog, maxDepth int) Service {
	return &service{
		catalog:  cat,
		maxDepth: maxDepth,
		now:      time.Now,
	}
}

// Plan builds one tree per demand, aggregates the leaves and matches sources
func (s *service) Plan(ctx context.Context, demands []Demand) (*Plan, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlanStarted, "demands", len(demands))
	start := s.now()

	if err := validateDemands(demands); err != nil {
		return nil, err
	}

	snap, err := s.catalog.Snapshot()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}

	builder := NewBuilder(snap.Index, s.maxDepth)
	plan := &Plan{Roots: make([]*Node, 0, len(demands))}

	for _, d := range demands {
		root := builder.BuildID(d.ItemID, d.Quantity)
		if !root.Resolved() {
			log.Warn(LogMsgUnresolvedRoot, logger.AttrKeyItemID, d.ItemID)
			metrics.UnresolvedRefs.WithLabelValues(metrics.KindRoot).Inc()
		} else {
			plan.Totals.Value += root.Item.Value * float64(d.Quantity)
			plan.Totals.WeightKg += root.Item.WeightKg * float64(d.Quantity)
		}
		plan.Totals.Items, _ = addSat(plan.Totals.Items, d.Quantity)
		recordTreeMetrics(ctx, root)
		plan.Roots = append(plan.Roots, root)
	}

	plan.Requirements = Aggregate(plan.Roots)
	plan.Sources = MatchSources(plan.Requirements, snap.Items)
	for _, req := range plan.Requirements {
		if req.Saturated {
			log.Warn(LogMsgPlanSaturated, logger.AttrKeyItemID, req.ItemID)
		}
	}

	metrics.PlansComputed.Inc()
	metrics.PlanDuration.Observe(s.now().Sub(start).Seconds())
	log.Info(LogMsgPlanCompleted, "roots", len(plan.Roots), "requirements", len(plan.Requirements))
	return plan, nil
}

// BuildTree expands a single catalog item
func (s *service) BuildTree(ctx context.Context, itemID string, quantity int) (*Node, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgBuildTreeStarted, logger.AttrKeyItemID, itemID, "quantity", quantity)

	if quantity <= 0 {
		return nil, fmt.Errorf(ErrMsgQuantityFmt, domain.ErrInvalidQuantity, quantity, itemID)
	}

	snap, err := s.catalog.Snapshot()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}

	item, ok := snap.Index.Get(itemID)
	if !ok {
		return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, itemID)
	}

	root := NewBuilder(snap.Index, s.maxDepth).Build(item, quantity)
	recordTreeMetrics(ctx, root)
	return root, nil
}

// Predecessor resolves the tier below itemID and looks it up in the catalog.
// A missing catalog is not an error here; the id is derived from the name alone.
func (s *service) Predecessor(ctx context.Context, itemID string) (*PredecessorInfo, error) {
	info := &PredecessorInfo{ItemID: itemID}

	prev, ok := PredecessorID(itemID)
	if !ok {
		return info, nil
	}
	info.PredecessorID, info.HasPredecessor = prev, true

	if snap, err := s.catalog.Snapshot(); err == nil {
		if item, found := snap.Index.Get(prev); found {
			info.Predecessor = item
		}
	} else {
		logger.FromContext(ctx).Debug("Predecessor lookup skipped", "error", err)
	}
	return info, nil
}

func validateDemands(demands []Demand) error {
	for _, d := range demands {
		if d.Quantity <= 0 {
			return fmt.Errorf(ErrMsgQuantityFmt, domain.ErrInvalidQuantity, d.Quantity, d.ItemID)
		}
	}
	return nil
}

func recordTreeMetrics(ctx context.Context, root *Node) {
	var nodes int
	Walk(root, func(n *Node, depth int) {
		nodes++
		if depth > 0 && !n.Resolved() {
			kind := metrics.KindComponent
			if n.IsUpgrade {
				kind = metrics.KindPredecessor
			}
			metrics.UnresolvedRefs.WithLabelValues(kind).Inc()
		}
		if n.Truncated {
			metrics.TreeTruncations.WithLabelValues(n.TruncatedReason).Inc()
			logger.FromContext(ctx).Warn(LogMsgTreeTruncated,
				"root", root.ItemID, logger.AttrKeyItemID, n.ItemID, "reason", n.TruncatedReason, "depth", depth)
		}
	})
	metrics.TreeNodesBuilt.Add(float64(nodes))
}
