package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Tributo-api/internal/application/purchases"
	"github.com/jhoicas/Tributo-api/internal/application/trade"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

var _ trade.TxRunner = (*TradeTxRunner)(nil)

// TradeTxRunner ejecuta los callbacks del flujo de transferencias y ventas
// dentro de una transacción PostgreSQL.
type TradeTxRunner struct {
	pool *pgxpool.Pool
}

// NewTradeTxRunner construye el runner con el pool.
func NewTradeTxRunner(pool *pgxpool.Pool) *TradeTxRunner {
	return &TradeTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TradeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	trxRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

var _ purchases.TxRunner = (*PurchaseTxRunner)(nil)

// PurchaseTxRunner ejecuta los callbacks de cierre de compras (persona
// natural y mayorista) dentro de una transacción PostgreSQL.
type PurchaseTxRunner struct {
	pool *pgxpool.Pool
}

// NewPurchaseTxRunner construye el runner con el pool.
func NewPurchaseTxRunner(pool *pgxpool.Pool) *PurchaseTxRunner {
	return &PurchaseTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *PurchaseTxRunner) Run(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	wholesaleRepo repository.WholesaleRepository,
	productRepo repository.ProductRepository,
	trxRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewPurchaseRepository(tx),
		NewWholesaleRepository(tx),
		NewProductRepository(tx),
		NewTransactionRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
