package dailyclose

import "errors"

var (
	// ErrDailyCloseNotFound возвращается, когда закрытие не найдено в рамках отеля
	ErrDailyCloseNotFound = errors.New("dailyclose.repository: daily close not found")

	// ErrDailyCloseExists возвращается при попытке создать второе закрытие
	// на ту же дату. Маппится с unique violation (hotel_id, date_key) —
	// констрейнт в БД является последним рубежом против дублей
	// при конкурентных запросах на закрытие.
	ErrDailyCloseExists = errors.New("dailyclose.repository: daily close already exists for this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dailyclose.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dailyclose.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dailyclose.repository: failed to scan row")
)
