package mockapi

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Options struct {
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
	// OTP accepted by changePassword; fixed so flows are scriptable.
	OTP string
	Log *slog.Logger
}

type Server struct {
	store     *Store
	log       *slog.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func New(opts Options) (*Server, error) {
	if opts.AdminEmail == "" {
		opts.AdminEmail = "admin@melfak.local"
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = "admin123"
	}
	if opts.JWTSecret == "" {
		opts.JWTSecret = "mock-secret"
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = time.Hour
	}
	if opts.OTP == "" {
		opts.OTP = "1234"
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	store := newStore()
	store.user.Email = opts.AdminEmail
	store.user.FullName = "Melfak Admin"
	store.user.MobileNumber = "+966500000000"
	store.passwordHash = hash
	store.otp = opts.OTP

	return &Server{
		store:     store,
		log:       opts.Log,
		jwtSecret: []byte(opts.JWTSecret),
		tokenTTL:  opts.TokenTTL,
	}, nil
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/Authentication", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/verify", s.handleVerify)
		r.Post("/changePassword", s.handleChangePassword)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/Sections/getSections", s.handleGetSections)
		r.Post("/Sections/addSection", s.handleAddSection)
		r.Put("/Sections/updateSection", s.handleUpdateSection)
		r.Delete("/Sections/deleteSection", s.handleDeleteSection)

		r.Get("/Services/getServices", s.handleGetServices)
		r.Post("/Services/addService", s.handleAddService)
		r.Put("/Services/updateService", s.handleUpdateService)
		r.Delete("/Services/deleteService", s.handleDeleteService)
		r.Post("/Services/addImages", s.handleAddImages)
		r.Delete("/Services/deleteImage", s.handleDeleteImage)

		r.Get("/Items/getItems", s.handleGetItems)
		r.Post("/Items/addItem", s.handleAddItem)
		r.Put("/Items/updateItem", s.handleUpdateItem)
		r.Post("/Items/addAttribute", s.handleAddAttributes)
		r.Delete("/items/deleteItem", s.handleDeleteItem)
		r.Delete("/items/deleteAttribute", s.handleDeleteAttribute)

		r.Get("/Contacts/getContacts", s.handleGetContacts)
		r.Post("/contacts/addContact", s.handleAddContact)
		r.Put("/Contacts/updateContact", s.handleUpdateContact)
		r.Delete("/Contacts/deleteContact", s.handleDeleteContact)

		r.Get("/SocialMedias/getSocialMedias", s.handleGetSocialMedias)
		r.Post("/socialMedias/addSocialMedia", s.handleAddSocialMedia)
		r.Put("/SocialMedias/updateSocialMedia", s.handleUpdateSocialMedia)
		r.Delete("/SocialMedias/deleteSocialMedia", s.handleDeleteSocialMedia)

		r.Get("/Settings/getSettings", s.handleGetSettings)
		r.Put("/Settings/updateSettings", s.handleUpdateSettings)

		r.Get("/Users/me", s.handleMe)
		r.Put("/Users/updateProfile", s.handleUpdateProfile)
		r.Put("/Users/updatePassword", s.handleUpdatePassword)
		r.Post("/Users/logout", s.handleLogout)

		r.Get("/dashboard/getDashboard", s.handleGetDashboard)
		r.Get("/Pages/getPages", s.handleGetPages)
	})

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.log.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// formValue reads a scalar field from a parsed multipart form.
func formValue(r *http.Request, key string) string {
	if r.MultipartForm == nil {
		return ""
	}
	if vals := r.MultipartForm.Value[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func formBool(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(formValue(r, key))
	return v
}

func formInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(formValue(r, key))
	return v
}

// formFileURL stores an uploaded part as a fake URL, or echoes back the
// scalar value when the client kept an existing URL. The second return is
// false when the field was absent entirely.
func formFileURL(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	if files := r.MultipartForm.File[key]; len(files) > 0 {
		return uploadURL(files[0]), true
	}
	if v := formValue(r, key); v != "" {
		return v, true
	}
	return "", false
}

func uploadURL(h *multipart.FileHeader) string {
	return "/uploads/" + uuid.NewString() + "_" + h.Filename
}
