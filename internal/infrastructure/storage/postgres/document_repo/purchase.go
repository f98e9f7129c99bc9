package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"puntoventa/internal/core/id"
	"puntoventa/internal/domain"
	"puntoventa/internal/domain/documents/purchase"
	"puntoventa/internal/infrastructure/storage/postgres"
	"puntoventa/pkg/logger"
)

const (
	purchasesTable        = "doc_purchases"
	purchaseLinesTable    = "doc_purchase_lines"
	purchasePaymentsTable = "doc_purchase_payments"
)

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	*BaseDocumentRepo[*purchase.Purchase]

	audit *postgres.AuditService
}

// NewPurchaseRepo creates a new purchase repository. The audit service
// may be nil, in which case no trail is recorded.
func NewPurchaseRepo(txManager *postgres.TxManager, audit *postgres.AuditService) *PurchaseRepo {
	return &PurchaseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*purchase.Purchase](
			txManager,
			purchasesTable,
			postgres.ExtractDBColumns[purchase.Purchase](),
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
		audit: audit,
	}
}

// Create stores the document and records an audit entry.
func (r *PurchaseRepo) Create(ctx context.Context, doc *purchase.Purchase) error {
	if err := r.BaseDocumentRepo.Create(ctx, doc); err != nil {
		return err
	}
	r.logAudit(ctx, doc, postgres.AuditActionCreate)
	return nil
}

// Update stores the document and records an audit entry.
func (r *PurchaseRepo) Update(ctx context.Context, doc *purchase.Purchase) error {
	if err := r.BaseDocumentRepo.Update(ctx, doc); err != nil {
		return err
	}
	action := postgres.AuditActionUpdate
	if doc.IsIssued() {
		action = postgres.AuditActionIssue
	}
	r.logAudit(ctx, doc, action)
	return nil
}

// Delete soft-deletes the document and records an audit entry.
func (r *PurchaseRepo) Delete(ctx context.Context, docID id.ID) error {
	if err := r.BaseDocumentRepo.Delete(ctx, docID); err != nil {
		return err
	}
	if r.audit != nil {
		if err := r.audit.LogChange(ctx, "purchase", docID, postgres.AuditActionDelete, nil); err != nil {
			logger.Warn(ctx, "audit log failed", "entity", "purchase", "id", docID, "error", err)
		}
	}
	return nil
}

func (r *PurchaseRepo) logAudit(ctx context.Context, doc *purchase.Purchase, action postgres.AuditAction) {
	if r.audit == nil {
		return
	}
	if err := r.audit.LogChange(ctx, "purchase", doc.ID, action, postgres.StructToMap(doc)); err != nil {
		logger.Warn(ctx, "audit log failed", "entity", "purchase", "id", doc.ID, "error", err)
	}
}

// GetLines retrieves lines for a purchase.
func (r *PurchaseRepo) GetLines(ctx context.Context, docID id.ID) ([]purchase.Line, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "product_id",
			"quantity", "cost_base", "cost_final", "amount",
		).
		From(purchaseLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []purchase.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a purchase (delete existing + insert new).
func (r *PurchaseRepo) SaveLines(ctx context.Context, docID id.ID, lines []purchase.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + purchaseLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(purchaseLinesTable).
		Columns(
			"line_id", "document_id", "line_no", "product_id",
			"quantity", "cost_base", "cost_final", "amount",
		)

	for _, line := range lines {
		q = q.Values(
			line.LineID, docID, line.LineNo, line.ProductID,
			line.Quantity, line.CostBase, line.CostFinal, line.Amount,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

// GetPayments retrieves payments made to the supplier for a purchase.
func (r *PurchaseRepo) GetPayments(ctx context.Context, docID id.ID) ([]purchase.Payment, error) {
	q := r.Builder().
		Select(
			"payment_id", "line_no", "method_id", "method_label",
			"home_amount", "original_amount", "currency_abbr",
		).
		From(purchasePaymentsTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var payments []purchase.Payment
	if err := pgxscan.Select(ctx, r.Querier(ctx), &payments, sql, args...); err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	return payments, nil
}

// SavePayments saves payments for a purchase (delete existing + insert new).
func (r *PurchaseRepo) SavePayments(ctx context.Context, docID id.ID, payments []purchase.Payment) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + purchasePaymentsTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing payments: %w", err)
	}

	if len(payments) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(purchasePaymentsTable).
		Columns(
			"payment_id", "document_id", "line_no", "method_id", "method_label",
			"home_amount", "original_amount", "currency_abbr",
		)

	for _, p := range payments {
		q = q.Values(
			p.PaymentID, docID, p.LineNo, p.MethodID, p.MethodLabel,
			p.HomeAmount, p.OriginalAmount, p.CurrencyAbbr,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert payments: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert payments: %w", err)
	}

	return nil
}

// List retrieves purchases with filtering.
func (r *PurchaseRepo) List(ctx context.Context, filter purchase.ListFilter) (domain.ListResult[*purchase.Purchase], error) {
	result := domain.ListResult[*purchase.Purchase]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.SupplierID != nil {
		q = q.Where(squirrel.Eq{"supplier_id": *filter.SupplierID})
	}

	if filter.StoreID != nil {
		q = q.Where(squirrel.Eq{"store_id": *filter.StoreID})
	}

	if filter.RegisterID != nil {
		q = q.Where(squirrel.Eq{"register_id": *filter.RegisterID})
	}

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"folio": "%" + filter.Search + "%"})
	}

	countQ := r.Builder().Select("COUNT(*)").FromSelect(q, "sub")
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.Querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy, err := r.parseOrderBy(filter.OrderBy)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("select: %w", err)
	}

	return result, nil
}
