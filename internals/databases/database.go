package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	bookModel "perpusku_backend/internals/features/library/books/model"
	memberModel "perpusku_backend/internals/features/library/members/model"
	txModel "perpusku_backend/internals/features/library/transactions/model"
	librarianModel "perpusku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=perpusku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan automigrate semua tabel + bootstrap akun pustakawan.
func Migrate() {
	if err := DB.AutoMigrate(
		&bookModel.BookModel{},
		&memberModel.MemberModel{},
		&txModel.TransactionModel{},
		&librarianModel.LibrarianModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrate: %v", err)
	}
	if err := BootstrapLibrarian(DB); err != nil {
		log.Printf("bootstrap librarian err: %v", err)
	}
}

// BootstrapLibrarian membuat akun pustakawan pertama dari ENV
// (LIBRARIAN_EMAIL + LIBRARIAN_PASSWORD) kalau belum ada.
func BootstrapLibrarian(db *gorm.DB) error {
	email := configs.GetEnv("LIBRARIAN_EMAIL")
	password := configs.GetEnv("LIBRARIAN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var cnt int64
	if err := db.Model(&librarianModel.LibrarianModel{}).
		Where("librarian_email = ?", email).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	lib := librarianModel.LibrarianModel{
		LibrarianName:     configs.GetEnv("LIBRARIAN_NAME", "Admin Perpustakaan"),
		LibrarianEmail:    email,
		LibrarianPassword: string(hash),
	}
	if err := db.Create(&lib).Error; err != nil {
		return err
	}
	log.Printf("✅ Akun pustakawan %s dibuat.", email)
	return nil
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
