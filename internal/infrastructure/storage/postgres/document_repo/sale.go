package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"puntoventa/internal/core/id"
	"puntoventa/internal/domain"
	"puntoventa/internal/domain/documents/sale"
	"puntoventa/internal/infrastructure/storage/postgres"
	"puntoventa/pkg/logger"
)

const (
	salesTable        = "doc_sales"
	saleLinesTable    = "doc_sale_lines"
	salePaymentsTable = "doc_sale_payments"
)

// SaleRepo implements sale.Repository.
type SaleRepo struct {
	*BaseDocumentRepo[*sale.Sale]

	audit *postgres.AuditService
}

// NewSaleRepo creates a new sale repository. The audit service may be
// nil, in which case no trail is recorded.
func NewSaleRepo(txManager *postgres.TxManager, audit *postgres.AuditService) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*sale.Sale](
			txManager,
			salesTable,
			postgres.ExtractDBColumns[sale.Sale](),
			func() *sale.Sale { return &sale.Sale{} },
		),
		audit: audit,
	}
}

// Create stores the document and records an audit entry.
func (r *SaleRepo) Create(ctx context.Context, doc *sale.Sale) error {
	if err := r.BaseDocumentRepo.Create(ctx, doc); err != nil {
		return err
	}
	r.logAudit(ctx, doc, postgres.AuditActionCreate)
	return nil
}

// Update stores the document and records an audit entry. The pending
// to issued transition is recorded as an issue action.
func (r *SaleRepo) Update(ctx context.Context, doc *sale.Sale) error {
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
func (r *SaleRepo) Delete(ctx context.Context, docID id.ID) error {
	if err := r.BaseDocumentRepo.Delete(ctx, docID); err != nil {
		return err
	}
	if r.audit != nil {
		if err := r.audit.LogChange(ctx, "sale", docID, postgres.AuditActionDelete, nil); err != nil {
			logger.Warn(ctx, "audit log failed", "entity", "sale", "id", docID, "error", err)
		}
	}
	return nil
}

func (r *SaleRepo) logAudit(ctx context.Context, doc *sale.Sale, action postgres.AuditAction) {
	if r.audit == nil {
		return
	}
	if err := r.audit.LogChange(ctx, "sale", doc.ID, action, postgres.StructToMap(doc)); err != nil {
		logger.Warn(ctx, "audit log failed", "entity", "sale", "id", doc.ID, "error", err)
	}
}

// GetLines retrieves lines for a sale.
func (r *SaleRepo) GetLines(ctx context.Context, docID id.ID) ([]sale.Line, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "product_id",
			"quantity", "price_base", "price_final", "amount",
		).
		From(saleLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []sale.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a sale (delete existing + insert new).
func (r *SaleRepo) SaveLines(ctx context.Context, docID id.ID, lines []sale.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + saleLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(saleLinesTable).
		Columns(
			"line_id", "document_id", "line_no", "product_id",
			"quantity", "price_base", "price_final", "amount",
		)

	for _, line := range lines {
		q = q.Values(
			line.LineID, docID, line.LineNo, line.ProductID,
			line.Quantity, line.PriceBase, line.PriceFinal, line.Amount,
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

// GetPayments retrieves collected payments for a sale.
func (r *SaleRepo) GetPayments(ctx context.Context, docID id.ID) ([]sale.Payment, error) {
	q := r.Builder().
		Select(
			"payment_id", "line_no", "method_id", "method_label",
			"is_credit", "home_amount", "original_amount", "currency_abbr",
		).
		From(salePaymentsTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var payments []sale.Payment
	if err := pgxscan.Select(ctx, r.Querier(ctx), &payments, sql, args...); err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	return payments, nil
}

// SavePayments saves collected payments for a sale (delete existing + insert new).
func (r *SaleRepo) SavePayments(ctx context.Context, docID id.ID, payments []sale.Payment) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + salePaymentsTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing payments: %w", err)
	}

	if len(payments) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(salePaymentsTable).
		Columns(
			"payment_id", "document_id", "line_no", "method_id", "method_label",
			"is_credit", "home_amount", "original_amount", "currency_abbr",
		)

	for _, p := range payments {
		q = q.Values(
			p.PaymentID, docID, p.LineNo, p.MethodID, p.MethodLabel,
			p.IsCredit, p.HomeAmount, p.OriginalAmount, p.CurrencyAbbr,
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

// List retrieves sales with filtering.
func (r *SaleRepo) List(ctx context.Context, filter sale.ListFilter) (domain.ListResult[*sale.Sale], error) {
	result := domain.ListResult[*sale.Sale]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.ClientID != nil {
		q = q.Where(squirrel.Eq{"client_id": *filter.ClientID})
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
