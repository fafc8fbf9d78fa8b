// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/db/ent/schema"
	"github.com/voyagedesk/passport-tracker/gen/ent/invitation"
	"github.com/voyagedesk/passport-tracker/gen/ent/ocrjob"
	"github.com/voyagedesk/passport-tracker/gen/ent/passport"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
	"github.com/voyagedesk/passport-tracker/gen/ent/voyage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invitationFields := schema.Invitation{}.Fields()
	_ = invitationFields
	// invitationDescEmail is the schema descriptor for email field.
	invitationDescEmail := invitationFields[1].Descriptor()
	// invitation.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	invitation.EmailValidator = invitationDescEmail.Validators[0].(func(string) error)
	// invitationDescToken is the schema descriptor for token field.
	invitationDescToken := invitationFields[2].Descriptor()
	// invitation.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	invitation.TokenValidator = invitationDescToken.Validators[0].(func(string) error)
	// invitationDescIsUsed is the schema descriptor for is_used field.
	invitationDescIsUsed := invitationFields[4].Descriptor()
	// invitation.DefaultIsUsed holds the default value on creation for the is_used field.
	invitation.DefaultIsUsed = invitationDescIsUsed.Default.(bool)
	// invitationDescID is the schema descriptor for id field.
	invitationDescID := invitationFields[0].Descriptor()
	// invitation.DefaultID holds the default value on creation for the id field.
	invitation.DefaultID = invitationDescID.Default.(func() uuid.UUID)
	ocrjobFields := schema.OcrJob{}.Fields()
	_ = ocrjobFields
	// ocrjobDescFileName is the schema descriptor for file_name field.
	ocrjobDescFileName := ocrjobFields[2].Descriptor()
	// ocrjob.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	ocrjob.FileNameValidator = ocrjobDescFileName.Validators[0].(func(string) error)
	// ocrjobDescStatus is the schema descriptor for status field.
	ocrjobDescStatus := ocrjobFields[3].Descriptor()
	// ocrjob.DefaultStatus holds the default value on creation for the status field.
	ocrjob.DefaultStatus = ocrjobDescStatus.Default.(string)
	// ocrjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ocrjob.StatusValidator = ocrjobDescStatus.Validators[0].(func(string) error)
	// ocrjobDescProgress is the schema descriptor for progress field.
	ocrjobDescProgress := ocrjobFields[4].Descriptor()
	// ocrjob.DefaultProgress holds the default value on creation for the progress field.
	ocrjob.DefaultProgress = ocrjobDescProgress.Default.(int)
	// ocrjob.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	ocrjob.ProgressValidator = func() func(int) error {
		validators := ocrjobDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrjobDescCreatedAt is the schema descriptor for created_at field.
	ocrjobDescCreatedAt := ocrjobFields[5].Descriptor()
	// ocrjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	ocrjob.DefaultCreatedAt = ocrjobDescCreatedAt.Default.(func() time.Time)
	// ocrjobDescID is the schema descriptor for id field.
	ocrjobDescID := ocrjobFields[0].Descriptor()
	// ocrjob.DefaultID holds the default value on creation for the id field.
	ocrjob.DefaultID = ocrjobDescID.Default.(func() uuid.UUID)
	passportFields := schema.Passport{}.Fields()
	_ = passportFields
	// passportDescFirstName is the schema descriptor for first_name field.
	passportDescFirstName := passportFields[3].Descriptor()
	// passport.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	passport.FirstNameValidator = passportDescFirstName.Validators[0].(func(string) error)
	// passportDescLastName is the schema descriptor for last_name field.
	passportDescLastName := passportFields[4].Descriptor()
	// passport.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	passport.LastNameValidator = passportDescLastName.Validators[0].(func(string) error)
	// passportDescNationality is the schema descriptor for nationality field.
	passportDescNationality := passportFields[8].Descriptor()
	// passport.NationalityValidator is a validator for the "nationality" field. It is called by the builders before save.
	passport.NationalityValidator = func() func(string) error {
		validators := passportDescNationality.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(nationality string) error {
			for _, fn := range fns {
				if err := fn(nationality); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// passportDescPassportNumber is the schema descriptor for passport_number field.
	passportDescPassportNumber := passportFields[9].Descriptor()
	// passport.PassportNumberValidator is a validator for the "passport_number" field. It is called by the builders before save.
	passport.PassportNumberValidator = func() func(string) error {
		validators := passportDescPassportNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(passport_number string) error {
			for _, fn := range fns {
				if err := fn(passport_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// passportDescCreatedAt is the schema descriptor for created_at field.
	passportDescCreatedAt := passportFields[11].Descriptor()
	// passport.DefaultCreatedAt holds the default value on creation for the created_at field.
	passport.DefaultCreatedAt = passportDescCreatedAt.Default.(func() time.Time)
	// passportDescUpdatedAt is the schema descriptor for updated_at field.
	passportDescUpdatedAt := passportFields[12].Descriptor()
	// passport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	passport.DefaultUpdatedAt = passportDescUpdatedAt.Default.(func() time.Time)
	// passport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	passport.UpdateDefaultUpdatedAt = passportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// passportDescID is the schema descriptor for id field.
	passportDescID := passportFields[0].Descriptor()
	// passport.DefaultID holds the default value on creation for the id field.
	passport.DefaultID = passportDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[1].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[2].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhoneNumber is the schema descriptor for phone_number field.
	userDescPhoneNumber := userFields[4].Descriptor()
	// user.DefaultPhoneNumber holds the default value on creation for the phone_number field.
	user.DefaultPhoneNumber = userDescPhoneNumber.Default.(string)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[5].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[6].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[7].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	// userDescUploadedPagesCount is the schema descriptor for uploaded_pages_count field.
	userDescUploadedPagesCount := userFields[8].Descriptor()
	// user.DefaultUploadedPagesCount holds the default value on creation for the uploaded_pages_count field.
	user.DefaultUploadedPagesCount = userDescUploadedPagesCount.Default.(int)
	// user.UploadedPagesCountValidator is a validator for the "uploaded_pages_count" field. It is called by the builders before save.
	user.UploadedPagesCountValidator = userDescUploadedPagesCount.Validators[0].(func(int) error)
	// userDescPageCredits is the schema descriptor for page_credits field.
	userDescPageCredits := userFields[9].Descriptor()
	// user.DefaultPageCredits holds the default value on creation for the page_credits field.
	user.DefaultPageCredits = userDescPageCredits.Default.(int)
	// user.PageCreditsValidator is a validator for the "page_credits" field. It is called by the builders before save.
	user.PageCreditsValidator = userDescPageCredits.Validators[0].(func(int) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[10].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[11].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	voyageFields := schema.Voyage{}.Fields()
	_ = voyageFields
	// voyageDescDestination is the schema descriptor for destination field.
	voyageDescDestination := voyageFields[2].Descriptor()
	// voyage.DestinationValidator is a validator for the "destination" field. It is called by the builders before save.
	voyage.DestinationValidator = voyageDescDestination.Validators[0].(func(string) error)
	// voyageDescID is the schema descriptor for id field.
	voyageDescID := voyageFields[0].Descriptor()
	// voyage.DefaultID holds the default value on creation for the id field.
	voyage.DefaultID = voyageDescID.Default.(func() uuid.UUID)
}
