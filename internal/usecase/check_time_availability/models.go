package check_time_availability

// Request модель запроса на проверку одного слота
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
	Time string // Время слота, должно точно совпадать с ключом таблицы ("19:00")
}

// Response модель ответа
type Response struct {
	Date      string // Дата из запроса
	Time      string // Время из запроса
	Available bool   // Доступен ли слот
}
