package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"crm/internal/pkg/config"
	"crm/internal/pkg/postgres"
	"crm/pkg/logger/zap_adapter"
	"crm/pkg/querier"
	"crm/pkg/tx"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

const tables = `
	outbox,
	invoice_items, invoices,
	counterparty_contacts, counterparties,
	request_services, request_field_history, request_status_history,
	shipment_requests, schedule_entries, clients,
	price_rates, cities`

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем, переменные подгружает Makefile
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Config{Level: "warn", Service: "integration-test"})
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := postgres.Migrate(ctx, zapLogger, connPool); err != nil {
			panic(err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

// GetTxManager менеджер транзакций поверх того же пула, что и GetQuerier.
func GetTxManager() *tx.Manager {
	GetQuerier()
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := GetQuerier()
	_, err := q.Exec(ctx, "TRUNCATE TABLE "+tables+" RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	if setupSql == "" {
		return
	}
	_, err = q.Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, "TRUNCATE TABLE "+tables+" RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	_, err = GetQuerier().Exec(ctx, "ALTER SEQUENCE invoice_number_seq RESTART WITH 1")
	require.NoError(t, err)
}
