package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
	"github.com/rifkifakhrudin2004/campus-portal/internal/http/middleware"
)

// DashboardHandlers serves the three role dashboards from a single
// parameterized page: each role maps to a config rather than its own handler.
type DashboardHandlers struct {
	users   domain.UserAPI
	tokens  domain.TokenStore
	appName string
}

// NewDashboardHandlers creates new dashboard handlers
func NewDashboardHandlers(users domain.UserAPI, tokens domain.TokenStore, appName string) *DashboardHandlers {
	return &DashboardHandlers{users: users, tokens: tokens, appName: appName}
}

type dashboardCard struct {
	Title   string
	Caption string
	Value   string
	Note    string
}

type dashboardItem struct {
	Name   string
	Detail string
	Tag    string
}

type dashboardSection struct {
	Title   string
	Caption string
	Items   []dashboardItem
}

type dashboardConfig struct {
	Role      string
	Heading   string
	RoleLabel string
	Cards     []dashboardCard
	Sections  []dashboardSection
}

type dashboardView struct {
	AppName string
	User    *domain.User
	Config  dashboardConfig
	Users   []domain.User
}

// dashboards carries the summary content of each role's page. The numbers on
// the dosen and mahasiswa pages are mocked summary data; real figures live
// behind the remote API and are out of scope here.
var dashboards = map[string]dashboardConfig{
	domain.RoleAdmin: {
		Role:      domain.RoleAdmin,
		Heading:   "Selamat Datang di Halaman Admin! 👋",
		RoleLabel: "Administrator",
		Sections: []dashboardSection{
			{
				Title:   "Aktivitas Terbaru",
				Caption: "Ringkasan aktivitas sistem terbaru",
				Items: []dashboardItem{
					{Name: "Sistem berjalan normal"},
					{Name: "Database terhubung"},
				},
			},
		},
	},
	domain.RoleDosen: {
		Role:      domain.RoleDosen,
		Heading:   "Selamat Datang di Halaman Dosen! 📚",
		RoleLabel: "Dosen",
		Cards: []dashboardCard{
			{Title: "Mata Kuliah", Caption: "Mata kuliah yang diampu", Value: "5", Note: "Semester ini"},
			{Title: "Total Mahasiswa", Caption: "Mahasiswa yang mengikuti kelas", Value: "127", Note: "Aktif semester ini"},
		},
		Sections: []dashboardSection{
			{
				Title:   "Jadwal Mengajar Hari Ini",
				Caption: "Jadwal perkuliahan untuk hari ini",
				Items: []dashboardItem{
					{Name: "Algoritma & Pemrograman", Detail: "Ruang A.101", Tag: "08:00 - 10:00"},
					{Name: "Struktur Data", Detail: "Lab Komputer 2", Tag: "13:00 - 15:00"},
				},
			},
			{
				Title:   "Tugas Perlu Review",
				Caption: "Tugas mahasiswa yang menunggu penilaian",
				Items: []dashboardItem{
					{Name: "Project UAS", Detail: "15 submissions", Tag: "Pending"},
					{Name: "Tugas Minggu 8", Detail: "23 submissions", Tag: "Due Soon"},
				},
			},
		},
	},
	domain.RoleMahasiswa: {
		Role:      domain.RoleMahasiswa,
		Heading:   "Selamat Datang di Halaman Mahasiswa! 🎓",
		RoleLabel: "Mahasiswa",
		Cards: []dashboardCard{
			{Title: "IPK", Caption: "Indeks Prestasi Kumulatif", Value: "3.75", Note: "Semester 6"},
			{Title: "SKS", Caption: "Semester ini", Value: "24", Note: "dari 24 SKS max"},
			{Title: "Mata Kuliah", Caption: "Sedang diambil", Value: "8", Note: "Mata kuliah aktif"},
		},
		Sections: []dashboardSection{
			{
				Title:   "Jadwal Kuliah Hari Ini",
				Caption: "Jadwal perkuliahan untuk hari ini",
				Items: []dashboardItem{
					{Name: "Basis Data", Detail: "Ruang B.201 • Dr. Sari", Tag: "08:00 - 10:00"},
					{Name: "Pemrograman Web", Detail: "Lab Komputer 1 • Pak Ahmad", Tag: "10:00 - 12:00"},
					{Name: "Kalkulus II", Detail: "Ruang A.105 • Bu Diana", Tag: "13:00 - 15:00"},
				},
			},
			{
				Title:   "Tugas & Deadline",
				Caption: "Tugas yang harus dikumpulkan",
				Items: []dashboardItem{
					{Name: "Tugas ERD", Detail: "Basis Data", Tag: "Besok"},
					{Name: "Project Akhir", Detail: "Pemrograman Web", Tag: "3 hari"},
					{Name: "Latihan Soal", Detail: "Kalkulus II", Tag: "1 minggu"},
				},
			},
		},
	},
}

// Show renders the dashboard for a role. The page guard already verified the
// session's role matches, so the handler only assembles the view.
func (h *DashboardHandlers) Show(role string) gin.HandlerFunc {
	cfg := dashboards[role]
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		view := dashboardView{AppName: h.appName, User: sess.User, Config: cfg}

		if role == domain.RoleAdmin {
			h.fillAdminView(c, &view)
		}

		c.HTML(http.StatusOK, "dashboard.html", view)
	}
}

// fillAdminView loads the user directory for the admin counters. A directory
// failure degrades the page to its static sections instead of breaking it.
func (h *DashboardHandlers) fillAdminView(c *gin.Context, view *dashboardView) {
	token, _ := h.tokens.Get(c.Request)
	users, err := h.users.List(c.Request.Context(), token)
	if err != nil {
		log.Printf("dashboard: user directory unavailable: %v", err)
		return
	}

	var mahasiswa, dosen int
	for _, u := range users {
		switch u.Role {
		case domain.RoleMahasiswa:
			mahasiswa++
		case domain.RoleDosen:
			dosen++
		}
	}

	view.Users = users
	view.Config.Cards = []dashboardCard{
		{Title: "Total Users", Caption: "Jumlah semua pengguna", Value: strconv.Itoa(len(users))},
		{Title: "Mahasiswa", Caption: "Jumlah mahasiswa aktif", Value: strconv.Itoa(mahasiswa)},
		{Title: "Dosen", Caption: "Jumlah dosen aktif", Value: strconv.Itoa(dosen)},
	}

	activity := view.Config.Sections[0]
	activity.Items = append([]dashboardItem{}, activity.Items...)
	activity.Items = append(activity.Items, dashboardItem{Name: strconv.Itoa(len(users)) + " pengguna terdaftar dalam sistem"})
	view.Config.Sections = []dashboardSection{activity}
}
