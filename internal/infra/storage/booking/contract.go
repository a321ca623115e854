package booking

import "github.com/NPaugust/Femida-sub000/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
// Поддерживает *sql.DB, *sql.Tx и их инструментированные обёртки
type DBExecutor = dbmetrics.DBExecutor
