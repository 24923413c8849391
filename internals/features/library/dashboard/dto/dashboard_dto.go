// internals/features/library/dashboard/dto/dashboard_dto.go
package dto

// Satu titik grafik aktivitas: tanggal kalender + jumlah transaksi.
// Tanggal tanpa transaksi tidak dikirim (series sparse).
type DayCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// Baris laporan transaksi terbaru, sudah resolve judul + nama.
type RecentTransaction struct {
	Date   string `json:"date"` // YYYY-MM-DD HH:MM
	Type   string `json:"type"`
	Book   string `json:"book"`
	Member string `json:"member"`
}

type Counts struct {
	TotalBooks        int64 `json:"total_books"`
	TotalMembers      int64 `json:"total_members"`
	TotalTransactions int64 `json:"total_transactions"`
}
