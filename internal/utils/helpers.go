package utils

import (
	"time"

	"github.com/voyagedesk/passport-tracker/gen/ent"
	passportspb "github.com/voyagedesk/passport-tracker/gen/proto/passports/v1"
	"github.com/voyagedesk/passport-tracker/internal/entity"
)

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatYMD(t time.Time) string {
	return t.Format("2006-01-02")
}

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Email:              e.Email,
		PhoneNumber:        e.PhoneNumber,
		Username:           e.Username,
		Role:               e.Role,
		UploadedPagesCount: e.UploadedPagesCount,
		PageCredits:        e.PageCredits,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToPassport(e *ent.Passport) *entity.Passport {
	return &entity.Passport{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		BirthDate:       e.BirthDate,
		DeliveryDate:    e.DeliveryDate,
		ExpirationDate:  e.ExpirationDate,
		Nationality:     e.Nationality,
		PassportNumber:  e.PassportNumber,
		ConfidenceScore: e.ConfidenceScore,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToVoyage(e *ent.Voyage) *entity.Voyage {
	return &entity.Voyage{
		ID:          e.ID,
		UserID:      e.UserID,
		Destination: e.Destination,
	}
}

func ToInvitation(e *ent.Invitation) *entity.Invitation {
	return &entity.Invitation{
		ID:        e.ID,
		Email:     e.Email,
		Token:     e.Token,
		ExpiresAt: e.ExpiresAt,
		IsUsed:    e.IsUsed,
	}
}

func ToOcrJob(e *ent.OcrJob) *entity.OcrJob {
	return &entity.OcrJob{
		ID:         e.ID,
		UserID:     e.UserID,
		FileName:   e.FileName,
		Status:     e.Status,
		Progress:   e.Progress,
		CreatedAt:  e.CreatedAt,
		FinishedAt: e.FinishedAt,
		Successes:  e.Successes,
		Failures:   e.Failures,
	}
}

func ToPBUser(u *entity.User) *passportspb.User {
	return &passportspb.User{
		Id:                 u.ID.String(),
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Email:              u.Email,
		PhoneNumber:        u.PhoneNumber,
		Username:           u.Username,
		Role:               u.Role,
		UploadedPagesCount: int32(u.UploadedPagesCount),
		PageCredits:        int32(u.PageCredits),
		CreatedAt:          u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBPassport(p *entity.Passport) *passportspb.Passport {
	pb := &passportspb.Passport{
		Id:             p.ID.String(),
		OwnerId:        p.OwnerID.String(),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		BirthDate:      FormatYMD(p.BirthDate),
		ExpirationDate: FormatYMD(p.ExpirationDate),
		Nationality:    p.Nationality,
		PassportNumber: p.PassportNumber,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.DeliveryDate != nil {
		pb.DeliveryDate = FormatYMD(*p.DeliveryDate)
	}
	if p.ConfidenceScore != nil {
		pb.ConfidenceScore = *p.ConfidenceScore
	}
	return pb
}

func ToPBVoyage(v *entity.Voyage) *passportspb.Voyage {
	return &passportspb.Voyage{
		Id:          v.ID.String(),
		UserId:      v.UserID.String(),
		Destination: v.Destination,
	}
}

func ToPBInvitation(i *entity.Invitation) *passportspb.Invitation {
	return &passportspb.Invitation{
		Id:        i.ID.String(),
		Email:     i.Email,
		Token:     i.Token,
		ExpiresAt: i.ExpiresAt.UTC().Format(time.RFC3339),
		IsUsed:    i.IsUsed,
	}
}

func ToPBJob(j *entity.OcrJob) *passportspb.Job {
	pb := &passportspb.Job{
		Id:        j.ID.String(),
		UserId:    j.UserID.String(),
		FileName:  j.FileName,
		Status:    j.Status,
		Progress:  int32(j.Progress),
		CreatedAt: j.CreatedAt.UTC().Format(time.RFC3339),
		Successes: string(j.Successes),
		Failures:  string(j.Failures),
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return pb
}
