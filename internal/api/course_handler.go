package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"skyfitness/internal/catalog"
)

type CourseHandler struct {
	idMap *catalog.IDMap
}

func NewCourseHandler(idMap *catalog.IDMap) *CourseHandler {
	return &CourseHandler{idMap: idMap}
}

// List возвращает каталог курсов без деталей страницы курса
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	details := catalog.Courses()
	courses := make([]catalog.Course, 0, len(details))
	for _, c := range details {
		courses = append(courses, c.Course)
	}

	SendJSONResponse(w, http.StatusOK, courses)
}

// ByID возвращает курс с деталями. Принимает настоящий идентификатор,
// слаг терпим ради старых ссылок
func (h *CourseHandler) ByID(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")

	id, ok := h.idMap.CanonicalID(courseID)
	if !ok {
		SendErrorResponse(w, http.StatusNotFound, "Course not found")
		return
	}

	course, ok := catalog.CourseByID(id)
	if !ok {
		SendErrorResponse(w, http.StatusNotFound, "Course not found")
		return
	}

	SendJSONResponse(w, http.StatusOK, course)
}

// Workouts возвращает тренировки курса
func (h *CourseHandler) Workouts(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")

	workouts, ok := catalog.WorkoutsForCourse(h.idMap, courseID)
	if !ok {
		SendErrorResponse(w, http.StatusNotFound, "Course not found")
		return
	}

	SendJSONResponse(w, http.StatusOK, workouts)
}
