package catalog

// DailyDuration — длительность ежедневного занятия в минутах.
type DailyDuration struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Course — запись каталога в том виде, в каком её отдаёт API.
type Course struct {
	ID                     string         `json:"_id"`
	NameEN                 string         `json:"nameEN,omitempty"`
	NameRU                 string         `json:"nameRU,omitempty"`
	Description            string         `json:"description,omitempty"`
	DurationInDays         int            `json:"durationInDays,omitempty"`
	DailyDurationInMinutes *DailyDuration `json:"dailyDurationInMinutes,omitempty"`
}

// DisplayTitle — название курса для показа пользователю.
func (c Course) DisplayTitle() string {
	if c.NameRU != "" {
		return c.NameRU
	}
	return c.NameEN
}

// CourseDetails — запись каталога вместе с деталями страницы курса.
type CourseDetails struct {
	Course
	Suitable   []string `json:"suitable"`
	Directions []string `json:"directions"`
}

// Workout — одна тренировка курса.
type Workout struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	YoutubeID string `json:"youtubeId"`
}
