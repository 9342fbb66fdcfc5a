package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(20);not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// LawyerProfileModel é o model GORM para o registro de capacidade de advogado.
// UserID é único: no máximo um perfil por usuário.
type LawyerProfileModel struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	UserID    uint  `gorm:"uniqueIndex;not null"`
	CreatedAt int64 `gorm:"autoCreateTime"`
}

func (LawyerProfileModel) TableName() string {
	return "lawyer_profiles"
}

// BusinessModel é o model GORM para negócios.
// LawyerID referencia lawyer_profiles.id, não users.id.
type BusinessModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	NIB       *string `gorm:"type:varchar(13)"`
	OwnerID   uint    `gorm:"not null;index"`
	LawyerID  *uint   `gorm:"index"`
	CreatedAt int64   `gorm:"autoCreateTime;index"`
	UpdatedAt int64   `gorm:"autoUpdateTime"`
}

func (BusinessModel) TableName() string {
	return "businesses"
}

// ConsultationModel é o model GORM para consultas jurídicas
type ConsultationModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	BusinessID uint   `gorm:"not null;index"`
	Notes      string `gorm:"type:text"`
	Status     string `gorm:"type:varchar(20);not null;index"`
	LawyerID   *uint  `gorm:"index"`
	CreatedAt  int64  `gorm:"autoCreateTime;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime"`
}

func (ConsultationModel) TableName() string {
	return "consultations"
}

// AttachmentModel é o model GORM para o índice de arquivos
type AttachmentModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	Kind           string `gorm:"type:varchar(20);not null;index"`
	BusinessID     uint   `gorm:"not null;index"`
	ConsultationID *uint  `gorm:"index"`
	Filename       string `gorm:"type:varchar(500);not null"`
	StorageKey     string `gorm:"type:varchar(255);not null"`
	CreatedAt      int64  `gorm:"autoCreateTime;index"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}
