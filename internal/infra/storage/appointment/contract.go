package appointment

import "github.com/rafaelruch/agendapro-sub002/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces so the repository runs unchanged
// on a raw pool, a metric-wrapped pool or an open transaction.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
