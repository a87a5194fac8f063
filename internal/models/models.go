// Package models declares the back office's domain record shapes. Every
// struct embeds store.Meta, so the store stamps id/created_at/updated_at
// and the structs stay plain data carriers: validation and rendering live
// in the UI layer, not here.
//
// JSON tags follow the column names of the remote backend so a collection
// snapshot can be seeded from (or compared against) a backend export
// without field mapping.
package models

import "github.com/magangjo/backoffice/internal/store"

// Student (siswa) is an internship candidate from a vocational school.
type Student struct {
	store.Meta
	Nama         string `json:"nama"`
	NISN         string `json:"nisn"`
	Email        string `json:"email"`
	Telepon      string `json:"telepon"`
	Alamat       string `json:"alamat"`
	SekolahID    string `json:"sekolah_id"`
	JurusanID    string `json:"jurusan_id"`
	TanggalLahir string `json:"tanggal_lahir"`
	Status       string `json:"status"` // aktif, magang, selesai, keluar
	FotoURL      string `json:"foto_url"`
}

// School (sekolah) a student comes from.
type School struct {
	store.Meta
	Nama    string `json:"nama"`
	NPSN    string `json:"npsn"`
	Alamat  string `json:"alamat"`
	Kota    string `json:"kota"`
	Telepon string `json:"telepon"`
	Kontak  string `json:"kontak"`
}

// Major (jurusan) is a vocational study program.
type Major struct {
	store.Meta
	Nama string `json:"nama"`
	Kode string `json:"kode"`
}

// Company (perusahaan) hosts interns and receives invoices.
type Company struct {
	store.Meta
	Nama      string `json:"nama"`
	Bidang    string `json:"bidang"`
	Alamat    string `json:"alamat"`
	Kota      string `json:"kota"`
	Telepon   string `json:"telepon"`
	Email     string `json:"email"`
	NPWP      string `json:"npwp"`
	Catatan   string `json:"catatan"`
	KontakPIC string `json:"kontak_pic"`
}

// JobOrder is a company's request for interns.
type JobOrder struct {
	store.Meta
	PerusahaanID string `json:"perusahaan_id"`
	Posisi       string `json:"posisi"`
	Kuota        int    `json:"kuota"`
	JurusanID    string `json:"jurusan_id"`
	TanggalMulai string `json:"tanggal_mulai"`
	DurasiBulan  int    `json:"durasi_bulan"`
	Status       string `json:"status"` // open, terpenuhi, batal
	Catatan      string `json:"catatan"`
}

// Placement (penempatan) binds a student to a job order.
type Placement struct {
	store.Meta
	SiswaID        string `json:"siswa_id"`
	JobOrderID     string `json:"job_order_id"`
	TanggalMulai   string `json:"tanggal_mulai"`
	TanggalSelesai string `json:"tanggal_selesai"`
	Status         string `json:"status"` // berjalan, selesai, putus
	Pembimbing     string `json:"pembimbing"`
}

// Attendance (absensi) is one day of an intern's attendance.
type Attendance struct {
	store.Meta
	PenempatanID string `json:"penempatan_id"`
	Tanggal      string `json:"tanggal"`
	Status       string `json:"status"` // hadir, izin, sakit, alpa
	Keterangan   string `json:"keterangan"`
}

// Assessment (penilaian) is a periodic evaluation of an intern.
type Assessment struct {
	store.Meta
	PenempatanID string `json:"penempatan_id"`
	Periode      string `json:"periode"`
	NilaiTeknis  int    `json:"nilai_teknis"`
	NilaiSikap   int    `json:"nilai_sikap"`
	Catatan      string `json:"catatan"`
}

// Invoice billed to a company for placed interns.
type Invoice struct {
	store.Meta
	Nomor        string `json:"nomor"`
	PerusahaanID string `json:"perusahaan_id"`
	Tanggal      string `json:"tanggal"`
	JatuhTempo   string `json:"jatuh_tempo"`
	Total        int64  `json:"total"`
	Status       string `json:"status"` // draft, terkirim, lunas, telat
	Catatan      string `json:"catatan"`
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	store.Meta
	InvoiceID   string `json:"invoice_id"`
	Deskripsi   string `json:"deskripsi"`
	Kuantitas   int    `json:"kuantitas"`
	HargaSatuan int64  `json:"harga_satuan"`
	Subtotal    int64  `json:"subtotal"`
	SiswaID     string `json:"siswa_id"`
	Periode     string `json:"periode"`
}

// Payment (pembayaran) against an invoice.
type Payment struct {
	store.Meta
	InvoiceID  string `json:"invoice_id"`
	Tanggal    string `json:"tanggal"`
	Jumlah     int64  `json:"jumlah"`
	Metode     string `json:"metode"` // transfer, tunai, giro
	Referensi  string `json:"referensi"`
	Keterangan string `json:"keterangan"`
}

// Contract (kontrak) between the agency and a company.
type Contract struct {
	store.Meta
	PerusahaanID   string `json:"perusahaan_id"`
	Nomor          string `json:"nomor"`
	TanggalMulai   string `json:"tanggal_mulai"`
	TanggalSelesai string `json:"tanggal_selesai"`
	NilaiKontrak   int64  `json:"nilai_kontrak"`
	Status         string `json:"status"` // aktif, selesai, batal
}

// Document (dokumen) is a stored reference to an uploaded file. The file
// body lives outside this store; only the pointer is kept.
type Document struct {
	store.Meta
	PemilikID string `json:"pemilik_id"`
	Jenis     string `json:"jenis"` // cv, ijazah, mou, sertifikat
	Nama      string `json:"nama"`
	URL       string `json:"url"`
}

// Announcement (pengumuman) shown on the dashboard.
type Announcement struct {
	store.Meta
	Judul   string `json:"judul"`
	Isi     string `json:"isi"`
	Penting bool   `json:"penting"`
}

// ActivityLog records who changed what, for the audit screen.
type ActivityLog struct {
	store.Meta
	UserID   string `json:"user_id"`
	Aksi     string `json:"aksi"`
	Entitas  string `json:"entitas"`
	TargetID string `json:"entity_id"`
	Detail   string `json:"detail"`
}

// AppSetting is one named configuration value editable from the UI.
type AppSetting struct {
	store.Meta
	Kunci string `json:"kunci"`
	Nilai string `json:"nilai"`
}
