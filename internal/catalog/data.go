package catalog

// Встроенные данные каталога. Сервер — единственный источник истины:
// клиент всегда получает курсы и тренировки по сети, по настоящим
// идентификаторам.

// Courses возвращает полный каталог курсов.
func Courses() []CourseDetails {
	return []CourseDetails{
		{
			Course: Course{
				ID:                     "ab1c3f",
				NameEN:                 "Yoga",
				NameRU:                 "Йога",
				Description:            "Курс для начинающих",
				DurationInDays:         25,
				DailyDurationInMinutes: &DailyDuration{From: 20, To: 50},
			},
			Suitable: []string{
				"Давно хотели попробовать йогу, но не решались начать",
				"Хотите укрепить позвоночник, избавиться от болей в спине и суставах",
				"Ищете активность, полезную для тела и души",
			},
			Directions: []string{
				"Йога для новичков",
				"Кундалини-йога",
				"Хатха-йога",
				"Классическая йога",
				"Йогатерапия",
				"Аштанга-йога",
			},
		},
		{
			Course: Course{
				ID:                     "kfpq8e",
				NameEN:                 "Stretching",
				NameRU:                 "Стретчинг",
				Description:            "Гибкость и растяжка",
				DurationInDays:         20,
				DailyDurationInMinutes: &DailyDuration{From: 15, To: 40},
			},
			Suitable: []string{
				"Хотите стать гибче и убрать скованность",
				"Нужна разгрузка после сидячей работы",
				"Хотите улучшить осанку и подвижность",
			},
			Directions: []string{"Мягкая растяжка", "Суставная гимнастика", "Стретчинг для начинающих"},
		},
		{
			Course: Course{
				ID:                     "ypox9r",
				NameEN:                 "Fitness",
				NameRU:                 "Фитнес",
				Description:            "Тренировки дома",
				DurationInDays:         30,
				DailyDurationInMinutes: &DailyDuration{From: 20, To: 60},
			},
			Suitable: []string{
				"Хотите привести тело в тонус",
				"Нужны простые тренировки без зала",
				"Хотите улучшить выносливость",
			},
			Directions: []string{"Кардио", "Функциональные", "Общая физподготовка"},
		},
		{
			Course: Course{
				ID:                     "6i67sm",
				NameEN:                 "StepAirobic",
				NameRU:                 "Степ-аэробика",
				Description:            "Кардио тренировки",
				DurationInDays:         15,
				DailyDurationInMinutes: &DailyDuration{From: 25, To: 45},
			},
			Suitable: []string{
				"Любите динамичные тренировки",
				"Хотите больше кардио и сжечь калории",
				"Нравится тренироваться под ритм",
			},
			Directions: []string{"Базовые шаги", "Комбинации", "Интенсив"},
		},
		{
			Course: Course{
				ID:                     "q02a6i",
				NameEN:                 "BodyFlex",
				NameRU:                 "Бодифлекс",
				Description:            "Дыхание и фигура",
				DurationInDays:         20,
				DailyDurationInMinutes: &DailyDuration{From: 15, To: 30},
			},
			Suitable: []string{
				"Хотите мягкие тренировки",
				"Интересует дыхательная техника",
				"Нужно подтянуть фигуру без ударных нагрузок",
			},
			Directions: []string{"Дыхание", "Тонус", "Комплекс на тело"},
		},
	}
}

// WorkoutsByKind возвращает тренировки каждого вида курса.
func WorkoutsByKind() map[Kind][]Workout {
	return map[Kind][]Workout{
		KindYoga: {
			{ID: "day-1", Title: "Утренняя практика", Subtitle: "Йога на каждый день / 1 день", YoutubeID: "oCNnybFq-mQ"},
			{ID: "day-2", Title: "Красота и здоровье", Subtitle: "Йога на каждый день / 2 день", YoutubeID: "5AAry9LZzYw"},
			{ID: "day-3", Title: "Асаны стоя", Subtitle: "Йога на каждый день / 3 день", YoutubeID: "FAtd__R2pzM"},
			{ID: "day-4", Title: "Растягиваем мышцы бедра", Subtitle: "Йога на каждый день / 4 день", YoutubeID: "KA9CS_sVL_g"},
			{ID: "day-5", Title: "Гибкость спины", Subtitle: "Йога на каждый день / 5 день", YoutubeID: "cmxCEZCfiPQ"},
		},
		KindStretching: {
			{ID: "day-1", Title: "Легкая растяжка", Subtitle: "Стретчинг / 1 день", YoutubeID: "AHhPoKBXBWQ"},
			{ID: "day-2", Title: "Мобилити", Subtitle: "Стретчинг / 2 день", YoutubeID: "4pfCBO3BGvg"},
		},
		KindFitness: {
			{ID: "day-1", Title: "Кардио", Subtitle: "Фитнес / 1 день", YoutubeID: "IbA1zVI31jU"},
			{ID: "day-2", Title: "Тонус", Subtitle: "Фитнес / 2 день", YoutubeID: "4W2GIrvuZUc"},
		},
		KindStepAerobic: {
			{ID: "day-1", Title: "Базовые шаги", Subtitle: "Степ-аэробика / 1 день", YoutubeID: "sGDbXqAlIpo"},
		},
		KindBodyflex: {
			{ID: "day-1", Title: "Дыхание и тонус", Subtitle: "Бодифлекс / 1 день", YoutubeID: "5wb0tj-0kqM"},
		},
	}
}

// CourseByID ищет курс в каталоге по настоящему идентификатору.
func CourseByID(id string) (CourseDetails, bool) {
	for _, c := range Courses() {
		if c.ID == id {
			return c, true
		}
	}
	return CourseDetails{}, false
}

// WorkoutsForCourse возвращает тренировки курса, принимая слаг либо
// настоящий идентификатор.
func WorkoutsForCourse(idMap *IDMap, courseID string) ([]Workout, bool) {
	kind, ok := idMap.Resolve(courseID)
	if !ok {
		return nil, false
	}
	return WorkoutsByKind()[kind], true
}
