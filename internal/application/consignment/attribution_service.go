package consignment

import (
	"context"

	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/consignly/backend/internal/domain/finance"
	"github.com/consignly/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// overrideQuantityTolerance is the maximum difference allowed between the
// original attribution total and an override's total.
var overrideQuantityTolerance = decimal.NewFromFloat(0.01)

// AttributionService is the entry point for sale attribution. It decides
// which stock sources fund a sale, records the attribution trail, and posts
// the matching income statement entries, all within one transaction.
type AttributionService struct {
	scope           TransactionScope
	configStore     consignment.ConfigStore
	attributionRepo consignment.AttributionRepository
	poster          *finance.Poster
	logger          *zap.Logger
}

// NewAttributionService creates a new AttributionService. attributionRepo is
// the non-transactional repository used for read paths.
func NewAttributionService(
	scope TransactionScope,
	configStore consignment.ConfigStore,
	attributionRepo consignment.AttributionRepository,
	logger *zap.Logger,
) *AttributionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttributionService{
		scope:           scope,
		configStore:     configStore,
		attributionRepo: attributionRepo,
		poster:          finance.NewPoster(),
		logger:          logger,
	}
}

// AttributeSale splits the sold quantity across platform-owned stock and
// FIFO-ordered consignment batches according to the configured priority,
// records one attribution leg per source touched, and posts ledger entries
// per leg. The whole operation is atomic: on any failure no leg, batch
// mutation, stock decrement, or ledger entry is persisted.
func (s *AttributionService) AttributeSale(ctx context.Context, req AttributeSaleRequest) ([]*consignment.Attribution, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidQuantity
	}
	if req.SellingPrice.IsNegative() {
		return nil, shared.ErrInvalidInput
	}

	priority := s.loadPriority(ctx)

	var created []*consignment.Attribution
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByIDForUpdate(ctx, req.ProductID)
		if err != nil {
			return err
		}

		// Availability is checked against the product counters before any
		// state is touched; a failed sale must leave nothing behind.
		if product.TotalAvailable().LessThan(req.Quantity) {
			return shared.ErrInsufficientStock
		}

		batches, err := repos.BatchRepo().FindSellableByProduct(ctx, req.ProductID)
		if err != nil {
			return err
		}

		plan, err := consignment.PlanAllocation(priority, req.Quantity, product.OwnedAvailable(), batches)
		if err != nil {
			return err
		}

		batchByID := make(map[uuid.UUID]*consignment.Batch, len(batches))
		for _, b := range batches {
			batchByID[b.ID] = b
		}

		legs := make([]*consignment.Attribution, 0, len(plan.Legs))
		for _, planned := range plan.Legs {
			var leg *consignment.Attribution
			if planned.SourceType == consignment.SourceTypeConsignment {
				batch, ok := batchByID[planned.BatchID]
				if !ok {
					return shared.ErrNotFound
				}
				if err := batch.Deduct(planned.Quantity); err != nil {
					return err
				}
				if err := repos.BatchRepo().Update(ctx, batch); err != nil {
					return err
				}
				leg, err = consignment.NewConsignmentAttribution(
					req.OrderID, req.OrderItemID, req.ProductID, batch.ID,
					planned.Quantity, batch.UnitCost, req.SellingPrice, req.ActorID,
				)
			} else {
				leg, err = consignment.NewOwnedAttribution(
					req.OrderID, req.OrderItemID, req.ProductID,
					planned.Quantity, req.SellingPrice, req.ActorID,
				)
			}
			if err != nil {
				return err
			}
			legs = append(legs, leg)
		}

		if err := product.DeductStock(plan.TotalQuantity(), plan.ConsignmentTotal); err != nil {
			return err
		}
		if err := repos.ProductRepo().UpdateStock(ctx, product); err != nil {
			return err
		}

		for _, leg := range legs {
			if err := repos.AttributionRepo().Insert(ctx, leg); err != nil {
				return err
			}
			if err := s.postEntries(ctx, repos, leg); err != nil {
				return err
			}
		}

		created = legs
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale attributed",
		zap.String("order_id", req.OrderID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.String("quantity", req.Quantity.String()),
		zap.String("priority", priority.String()),
		zap.Int("legs", len(created)),
	)
	return created, nil
}

// OverrideAttribution supersedes an order's original attribution with
// admin-supplied legs. The original rows are retained unmodified; the new
// rows carry the override flag, the reason, and a back-reference. Quantity
// conservation is enforced before anything is touched, and the whole
// reverse-then-reapply sequence is one transaction: a failure at any step
// leaves the original attribution and all batches exactly as before.
func (s *AttributionService) OverrideAttribution(ctx context.Context, req OverrideRequest) ([]*consignment.Attribution, error) {
	if req.Reason == "" {
		return nil, shared.ErrReasonRequired
	}
	if len(req.Legs) == 0 {
		return nil, shared.ErrInvalidInput
	}
	for _, leg := range req.Legs {
		if leg.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.ErrInvalidQuantity
		}
		if leg.SourceType == consignment.SourceTypeConsignment && leg.BatchID == nil {
			return nil, shared.ErrInvalidInput
		}
		if !leg.SourceType.IsValid() {
			return nil, shared.ErrInvalidInput
		}
	}

	var created []*consignment.Attribution
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		originals, err := repos.AttributionRepo().FindOriginalsByOrder(ctx, req.OrderID)
		if err != nil {
			return err
		}
		if len(originals) == 0 {
			return shared.ErrNoAttributions
		}

		originalTotal := decimal.Zero
		originalConsignment := decimal.Zero
		for _, o := range originals {
			originalTotal = originalTotal.Add(o.Quantity)
			if o.IsConsignment() {
				originalConsignment = originalConsignment.Add(o.Quantity)
			}
		}
		newTotal := decimal.Zero
		newConsignment := decimal.Zero
		for _, leg := range req.Legs {
			newTotal = newTotal.Add(leg.Quantity)
			if leg.SourceType == consignment.SourceTypeConsignment {
				newConsignment = newConsignment.Add(leg.Quantity)
			}
		}
		if originalTotal.Sub(newTotal).Abs().GreaterThan(overrideQuantityTolerance) {
			return shared.ErrQuantityMismatch
		}

		productID := originals[0].ProductID
		product, err := repos.ProductRepo().FindByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		// The one-override-per-order guard is checked only after the product
		// row lock is held. Concurrent overrides of the same order serialize
		// on that lock, so the loser observes the winner's committed rows
		// here instead of re-restoring the original legs on a stale read.
		overridden, err := repos.AttributionRepo().HasOverride(ctx, req.OrderID)
		if err != nil {
			return err
		}
		if overridden {
			return shared.ErrAlreadyOverridden
		}

		// Reverse: hand each original consignment leg's quantity back to its
		// batch before the new legs draw from them.
		for _, o := range originals {
			if !o.IsConsignment() {
				continue
			}
			batch, err := repos.BatchRepo().FindByID(ctx, *o.BatchID)
			if err != nil {
				return err
			}
			if err := batch.Restore(o.Quantity); err != nil {
				return err
			}
			if err := repos.BatchRepo().Update(ctx, batch); err != nil {
				return err
			}
		}

		// Reapply: validate capacity after restoration, then deduct.
		legs := make([]*consignment.Attribution, 0, len(req.Legs))
		for _, newLeg := range req.Legs {
			var leg *consignment.Attribution
			if newLeg.SourceType == consignment.SourceTypeConsignment {
				batch, err := repos.BatchRepo().FindByID(ctx, *newLeg.BatchID)
				if err != nil {
					return err
				}
				if batch.ProductID != productID {
					return shared.ErrInvalidInput
				}
				if batch.Available().LessThan(newLeg.Quantity) {
					return shared.ErrInsufficientBatchStock
				}
				if err := batch.Deduct(newLeg.Quantity); err != nil {
					return err
				}
				if err := repos.BatchRepo().Update(ctx, batch); err != nil {
					return err
				}
				leg, err = consignment.NewConsignmentAttribution(
					req.OrderID, originals[0].OrderItemID, productID, batch.ID,
					newLeg.Quantity, batch.UnitCost, product.SellingPrice, req.ActorID,
				)
				if err != nil {
					return err
				}
			} else {
				leg, err = consignment.NewOwnedAttribution(
					req.OrderID, originals[0].OrderItemID, productID,
					newLeg.Quantity, product.SellingPrice, req.ActorID,
				)
				if err != nil {
					return err
				}
			}
			if err := leg.MarkOverride(req.Reason, originals[0].ID); err != nil {
				return err
			}
			legs = append(legs, leg)
		}

		// Shifting sold units between sources changes how much consignment
		// stock is physically on hand; keep the product counters in sync with
		// the batch quantities. A corrected total within the tolerance also
		// moves the total counter.
		totalDelta := originalTotal.Sub(newTotal)
		consignmentDelta := originalConsignment.Sub(newConsignment)
		if !totalDelta.IsZero() || !consignmentDelta.IsZero() {
			if err := product.ReconcileStock(totalDelta, consignmentDelta); err != nil {
				return err
			}
			if err := repos.ProductRepo().UpdateStock(ctx, product); err != nil {
				return err
			}
		}

		for _, leg := range legs {
			if err := repos.AttributionRepo().Insert(ctx, leg); err != nil {
				return err
			}
			if err := s.postEntries(ctx, repos, leg); err != nil {
				return err
			}
		}

		created = legs
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("attribution overridden",
		zap.String("order_id", req.OrderID.String()),
		zap.String("reason", req.Reason),
		zap.Int("legs", len(created)),
	)
	return created, nil
}

// GetOrderAttributions returns all attributions recorded for an order,
// originals and overrides, in creation order.
func (s *AttributionService) GetOrderAttributions(ctx context.Context, orderID uuid.UUID) ([]*consignment.Attribution, error) {
	return s.attributionRepo.FindByOrder(ctx, orderID)
}

// postEntries builds and inserts the ledger entries for one attribution leg
func (s *AttributionService) postEntries(ctx context.Context, repos TransactionalRepositories, leg *consignment.Attribution) error {
	entries, err := s.poster.PostAttribution(leg)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := repos.LedgerRepo().Insert(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// loadPriority reads the allocation priority from the configuration store,
// defaulting to owned-first when the store is empty or unreachable.
func (s *AttributionService) loadPriority(ctx context.Context) consignment.AllocationPriority {
	if s.configStore == nil {
		return consignment.DefaultPriority
	}
	priority, err := s.configStore.GetPriority(ctx)
	if err != nil {
		s.logger.Warn("failed to load attribution config, using default priority",
			zap.Error(err),
			zap.String("default", consignment.DefaultPriority.String()),
		)
		return consignment.DefaultPriority
	}
	if !priority.IsValid() {
		return consignment.DefaultPriority
	}
	return priority
}
