// Package tables declares every logical collection name the back office
// persists, and the Registry that binds a typed collection to each domain
// entity. Collection names are data: renaming one orphans the data stored
// under the old name, so treat the constants as frozen.
package tables

import (
	"github.com/magangjo/backoffice/internal/models"
	"github.com/magangjo/backoffice/internal/store"
)

// Collection names, grouped the way the back office's modules group them.
const (
	// Students and schooling.
	Siswa          = "siswa"
	Sekolah        = "sekolah"
	Jurusan        = "jurusan"
	Kelas          = "kelas"
	GuruPembimbing = "guru_pembimbing"

	// Companies and demand.
	Perusahaan    = "perusahaan"
	KontakPIC     = "kontak_pic"
	JobOrder      = "job_order"
	Kontrak       = "kontrak"
	LowonganArsip = "lowongan_arsip"

	// Placements and monitoring.
	Penempatan    = "penempatan"
	Absensi       = "absensi"
	Penilaian     = "penilaian"
	LaporanMagang = "laporan_magang"
	Kunjungan     = "kunjungan"
	Sertifikat    = "sertifikat"

	// Billing.
	Invoice      = "invoice"
	InvoiceItem  = "invoice_item"
	Pembayaran   = "pembayaran"
	TagihanArsip = "tagihan_arsip"
	Refund       = "refund"

	// Documents and communication.
	Dokumen     = "dokumen"
	Pengumuman  = "pengumuman"
	PesanMasuk  = "pesan_masuk"
	PesanKeluar = "pesan_keluar"
	Notifikasi  = "notifikasi"

	// Reference data.
	Provinsi     = "provinsi"
	Kota         = "kota"
	BidangUsaha  = "bidang_usaha"
	JenisDokumen = "jenis_dokumen"
	MetodeBayar  = "metode_bayar"
	PeriodeAjar  = "periode_ajar"

	// Administration.
	ActivityLog  = "activity_log"
	AppSetting   = "app_setting"
	Backup       = "backup_meta"
	ImportBatch  = "import_batch"
	ExportBatch  = "export_batch"
	LaporanKas   = "laporan_kas"
	RekapBulanan = "rekap_bulanan"
	Agenda       = "agenda"
)

// Registry holds one typed collection per domain entity, all bound to the
// same store. Construct it once at startup and hand it to the modules;
// two registries over the same store observe each other's writes.
type Registry struct {
	Students      *store.Collection[*models.Student]
	Schools       *store.Collection[*models.School]
	Majors        *store.Collection[*models.Major]
	Companies     *store.Collection[*models.Company]
	JobOrders     *store.Collection[*models.JobOrder]
	Placements    *store.Collection[*models.Placement]
	Attendance    *store.Collection[*models.Attendance]
	Assessments   *store.Collection[*models.Assessment]
	Invoices      *store.Collection[*models.Invoice]
	InvoiceItems  *store.Collection[*models.InvoiceItem]
	Payments      *store.Collection[*models.Payment]
	Contracts     *store.Collection[*models.Contract]
	Documents     *store.Collection[*models.Document]
	Announcements *store.Collection[*models.Announcement]
	ActivityLogs  *store.Collection[*models.ActivityLog]
	AppSettings   *store.Collection[*models.AppSetting]
}

// NewRegistry instantiates the typed collections.
func NewRegistry(s *store.Store) *Registry {
	return &Registry{
		Students:      store.NewCollection[*models.Student](s, Siswa),
		Schools:       store.NewCollection[*models.School](s, Sekolah),
		Majors:        store.NewCollection[*models.Major](s, Jurusan),
		Companies:     store.NewCollection[*models.Company](s, Perusahaan),
		JobOrders:     store.NewCollection[*models.JobOrder](s, JobOrder),
		Placements:    store.NewCollection[*models.Placement](s, Penempatan),
		Attendance:    store.NewCollection[*models.Attendance](s, Absensi),
		Assessments:   store.NewCollection[*models.Assessment](s, Penilaian),
		Invoices:      store.NewCollection[*models.Invoice](s, Invoice),
		InvoiceItems:  store.NewCollection[*models.InvoiceItem](s, InvoiceItem),
		Payments:      store.NewCollection[*models.Payment](s, Pembayaran),
		Contracts:     store.NewCollection[*models.Contract](s, Kontrak),
		Documents:     store.NewCollection[*models.Document](s, Dokumen),
		Announcements: store.NewCollection[*models.Announcement](s, Pengumuman),
		ActivityLogs:  store.NewCollection[*models.ActivityLog](s, ActivityLog),
		AppSettings:   store.NewCollection[*models.AppSetting](s, AppSetting),
	}
}

// All lists every declared collection name. Used by maintenance tooling
// (exports, integrity sweeps) that must touch each collection.
func All() []string {
	return []string{
		Siswa, Sekolah, Jurusan, Kelas, GuruPembimbing,
		Perusahaan, KontakPIC, JobOrder, Kontrak, LowonganArsip,
		Penempatan, Absensi, Penilaian, LaporanMagang, Kunjungan, Sertifikat,
		Invoice, InvoiceItem, Pembayaran, TagihanArsip, Refund,
		Dokumen, Pengumuman, PesanMasuk, PesanKeluar, Notifikasi,
		Provinsi, Kota, BidangUsaha, JenisDokumen, MetodeBayar, PeriodeAjar,
		ActivityLog, AppSetting, Backup, ImportBatch, ExportBatch,
		LaporanKas, RekapBulanan, Agenda,
	}
}
