package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrTokenRequired ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid  ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation        ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload    ErrCode = "INVALID_PAYLOAD"
	ErrInvalidGrade      ErrCode = "INVALID_GRADE"
	ErrReferenceNotFound ErrCode = "REFERENCE_NOT_FOUND"
	ErrUnsupportedFormat ErrCode = "UNSUPPORTED_FORMAT"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrMahasiswaNotFound ErrCode = "MAHASISWA_NOT_FOUND"
	ErrConflict          ErrCode = "CONFLICT"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrTokenRequired:
		return "Token autentikasi diperlukan."
	case ErrTokenInvalid:
		return "Token autentikasi tidak valid."

	case ErrValidation:
		return "Validasi gagal. Silakan periksa masukan Anda."
	case ErrInvalidPayload:
		return "Payload permintaan tidak valid."
	case ErrInvalidGrade:
		return "Nilai tidak terdaftar pada tabel bobot nilai."
	case ErrReferenceNotFound:
		return "Mahasiswa atau mata kuliah yang dirujuk tidak ditemukan."
	case ErrUnsupportedFormat:
		return "Format ekspor tidak didukung."

	case ErrNotFound:
		return "Sumber daya tidak ditemukan."
	case ErrMahasiswaNotFound:
		return "Data mahasiswa tidak ditemukan untuk NIM tersebut."
	case ErrConflict:
		return "Sumber daya sudah ada."

	case ErrRateLimitExceeded:
		return "Terlalu banyak permintaan. Silakan coba lagi nanti."

	case ErrInternal:
		return "Terjadi kesalahan server internal."
	default:
		return "Terjadi kesalahan yang tidak terduga."
	}
}
