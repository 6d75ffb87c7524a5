package db

import (
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// Ordered admin entities (board members, trustees, donation causes, youth
// programs, annual reports) all follow the same pattern: CRUD plus a
// display_order integer the admin can reorder by.

func ListBoardMembers() ([]model.BoardMember, error) {
	var out []model.BoardMember
	const q = `
	SELECT id, name, position, bio, photo_url, display_order, created_at, updated_at
	  FROM board_members ORDER BY display_order, id;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListBoardMembers failed")
		return nil, err
	}
	return out, nil
}

func CreateBoardMember(m model.BoardMember) (model.BoardMember, error) {
	var out model.BoardMember
	const q = `
	INSERT INTO board_members (name, position, bio, photo_url, display_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING id, name, position, bio, photo_url, display_order, created_at, updated_at;`
	if err := DB.Get(&out, q, m.Name, m.Position, m.Bio, m.PhotoURL, m.DisplayOrder); err != nil {
		log.Error().Err(err).Msg("CreateBoardMember failed")
		return model.BoardMember{}, err
	}
	return out, nil
}

func UpdateBoardMember(m model.BoardMember) (model.BoardMember, error) {
	var out model.BoardMember
	const q = `
	UPDATE board_members SET
	  name = $2, position = $3, bio = $4, photo_url = $5, display_order = $6, updated_at = now()
	WHERE id = $1
	RETURNING id, name, position, bio, photo_url, display_order, created_at, updated_at;`
	if err := DB.Get(&out, q, m.ID, m.Name, m.Position, m.Bio, m.PhotoURL, m.DisplayOrder); err != nil {
		log.Error().Err(err).Int("board_member_id", m.ID).Msg("UpdateBoardMember failed")
		return model.BoardMember{}, err
	}
	return out, nil
}

func GetBoardMemberByID(id int) (model.BoardMember, error) {
	var m model.BoardMember
	err := DB.Get(&m, `
	SELECT id, name, position, bio, photo_url, display_order, created_at, updated_at
	  FROM board_members WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("board_member_id", id).Msg("GetBoardMemberByID failed")
	}
	return m, err
}

func DeleteBoardMember(id int) error {
	_, err := DB.Exec(`DELETE FROM board_members WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("board_member_id", id).Msg("DeleteBoardMember failed")
	}
	return err
}

func ListTrustees() ([]model.Trustee, error) {
	var out []model.Trustee
	const q = `
	SELECT id, name, title, photo_url, display_order, created_at, updated_at
	  FROM trustees ORDER BY display_order, id;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListTrustees failed")
		return nil, err
	}
	return out, nil
}

func CreateTrustee(t model.Trustee) (model.Trustee, error) {
	var out model.Trustee
	const q = `
	INSERT INTO trustees (name, title, photo_url, display_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING id, name, title, photo_url, display_order, created_at, updated_at;`
	if err := DB.Get(&out, q, t.Name, t.Title, t.PhotoURL, t.DisplayOrder); err != nil {
		log.Error().Err(err).Msg("CreateTrustee failed")
		return model.Trustee{}, err
	}
	return out, nil
}

func UpdateTrustee(t model.Trustee) (model.Trustee, error) {
	var out model.Trustee
	const q = `
	UPDATE trustees SET
	  name = $2, title = $3, photo_url = $4, display_order = $5, updated_at = now()
	WHERE id = $1
	RETURNING id, name, title, photo_url, display_order, created_at, updated_at;`
	if err := DB.Get(&out, q, t.ID, t.Name, t.Title, t.PhotoURL, t.DisplayOrder); err != nil {
		log.Error().Err(err).Int("trustee_id", t.ID).Msg("UpdateTrustee failed")
		return model.Trustee{}, err
	}
	return out, nil
}

func DeleteTrustee(id int) error {
	_, err := DB.Exec(`DELETE FROM trustees WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("trustee_id", id).Msg("DeleteTrustee failed")
	}
	return err
}

func ListDonationCauses(activeOnly bool) ([]model.DonationCause, error) {
	var out []model.DonationCause
	q := `
	SELECT id, name, description, donate_url, image_url, is_active, display_order, created_at, updated_at
	  FROM donation_causes`
	if activeOnly {
		q += ` WHERE is_active = true`
	}
	q += ` ORDER BY display_order, id;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListDonationCauses failed")
		return nil, err
	}
	return out, nil
}

func CreateDonationCause(c model.DonationCause) (model.DonationCause, error) {
	var out model.DonationCause
	const q = `
	INSERT INTO donation_causes
	  (name, description, donate_url, image_url, is_active, display_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	RETURNING id, name, description, donate_url, image_url, is_active, display_order, created_at, updated_at;`
	if err := DB.Get(&out, q, c.Name, c.Description, c.DonateURL, c.ImageURL, c.IsActive, c.DisplayOrder); err != nil {
		log.Error().Err(err).Msg("CreateDonationCause failed")
		return model.DonationCause{}, err
	}
	return out, nil
}

func UpdateDonationCause(c model.DonationCause) (model.DonationCause, error) {
	var out model.DonationCause
	const q = `
	UPDATE donation_causes SET
	  name = $2, description = $3, donate_url = $4, image_url = $5,
	  is_active = $6, display_order = $7, updated_at = now()
	WHERE id = $1
	RETURNING id, name, description, donate_url, image_url, is_active, display_order, created_at, updated_at;`
	if err := DB.Get(&out, q, c.ID, c.Name, c.Description, c.DonateURL, c.ImageURL, c.IsActive, c.DisplayOrder); err != nil {
		log.Error().Err(err).Int("cause_id", c.ID).Msg("UpdateDonationCause failed")
		return model.DonationCause{}, err
	}
	return out, nil
}

func GetDonationCauseByID(id int) (model.DonationCause, error) {
	var c model.DonationCause
	err := DB.Get(&c, `
	SELECT id, name, description, donate_url, image_url, is_active, display_order, created_at, updated_at
	  FROM donation_causes WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("cause_id", id).Msg("GetDonationCauseByID failed")
	}
	return c, err
}

func DeleteDonationCause(id int) error {
	_, err := DB.Exec(`DELETE FROM donation_causes WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("cause_id", id).Msg("DeleteDonationCause failed")
	}
	return err
}

// ListYouthPrograms returns programs with their subprograms attached.
func ListYouthPrograms() ([]model.YouthProgram, error) {
	var programs []model.YouthProgram
	const q = `
	SELECT id, name, description, image_url, display_order, created_at, updated_at
	  FROM youth_programs ORDER BY display_order, id;`
	if err := DB.Select(&programs, q); err != nil {
		log.Error().Err(err).Msg("ListYouthPrograms failed")
		return nil, err
	}

	var subs []model.YouthSubprogram
	const sq = `
	SELECT id, program_id, name, schedule, age_range, display_order, created_at
	  FROM youth_subprograms ORDER BY display_order, id;`
	if err := DB.Select(&subs, sq); err != nil {
		log.Error().Err(err).Msg("ListYouthPrograms subprograms failed")
		return nil, err
	}
	byProgram := make(map[int][]model.YouthSubprogram)
	for _, s := range subs {
		byProgram[s.ProgramID] = append(byProgram[s.ProgramID], s)
	}
	for i := range programs {
		programs[i].Subprograms = byProgram[programs[i].ID]
	}
	return programs, nil
}

func CreateYouthProgram(p model.YouthProgram) (model.YouthProgram, error) {
	var out model.YouthProgram
	const q = `
	INSERT INTO youth_programs (name, description, image_url, display_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING id, name, description, image_url, display_order, created_at, updated_at;`
	if err := DB.Get(&out, q, p.Name, p.Description, p.ImageURL, p.DisplayOrder); err != nil {
		log.Error().Err(err).Msg("CreateYouthProgram failed")
		return model.YouthProgram{}, err
	}
	return out, nil
}

func UpdateYouthProgram(p model.YouthProgram) (model.YouthProgram, error) {
	var out model.YouthProgram
	const q = `
	UPDATE youth_programs SET
	  name = $2, description = $3, image_url = $4, display_order = $5, updated_at = now()
	WHERE id = $1
	RETURNING id, name, description, image_url, display_order, created_at, updated_at;`
	if err := DB.Get(&out, q, p.ID, p.Name, p.Description, p.ImageURL, p.DisplayOrder); err != nil {
		log.Error().Err(err).Int("program_id", p.ID).Msg("UpdateYouthProgram failed")
		return model.YouthProgram{}, err
	}
	return out, nil
}

func GetYouthProgramByID(id int) (model.YouthProgram, error) {
	var p model.YouthProgram
	err := DB.Get(&p, `
	SELECT id, name, description, image_url, display_order, created_at, updated_at
	  FROM youth_programs WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("program_id", id).Msg("GetYouthProgramByID failed")
	}
	return p, err
}

// DeleteYouthProgram removes a program; subprograms cascade in the schema.
func DeleteYouthProgram(id int) error {
	_, err := DB.Exec(`DELETE FROM youth_programs WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("program_id", id).Msg("DeleteYouthProgram failed")
	}
	return err
}

func CreateYouthSubprogram(s model.YouthSubprogram) (model.YouthSubprogram, error) {
	var out model.YouthSubprogram
	const q = `
	INSERT INTO youth_subprograms (program_id, name, schedule, age_range, display_order, created_at)
	VALUES ($1, $2, $3, $4, $5, now())
	RETURNING id, program_id, name, schedule, age_range, display_order, created_at;`
	if err := DB.Get(&out, q, s.ProgramID, s.Name, s.Schedule, s.AgeRange, s.DisplayOrder); err != nil {
		log.Error().Err(err).Msg("CreateYouthSubprogram failed")
		return model.YouthSubprogram{}, err
	}
	return out, nil
}

func DeleteYouthSubprogram(id int) error {
	_, err := DB.Exec(`DELETE FROM youth_subprograms WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("subprogram_id", id).Msg("DeleteYouthSubprogram failed")
	}
	return err
}

func ListAnnualReports() ([]model.AnnualReport, error) {
	var out []model.AnnualReport
	const q = `
	SELECT id, title, year, file_url, display_order, created_at
	  FROM annual_reports ORDER BY display_order, year DESC, id;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListAnnualReports failed")
		return nil, err
	}
	return out, nil
}

func CreateAnnualReport(r model.AnnualReport) (model.AnnualReport, error) {
	var out model.AnnualReport
	const q = `
	INSERT INTO annual_reports (title, year, file_url, display_order, created_at)
	VALUES ($1, $2, $3, $4, now())
	RETURNING id, title, year, file_url, display_order, created_at;`
	if err := DB.Get(&out, q, r.Title, r.Year, r.FileURL, r.DisplayOrder); err != nil {
		log.Error().Err(err).Msg("CreateAnnualReport failed")
		return model.AnnualReport{}, err
	}
	return out, nil
}

func GetAnnualReportByID(id int) (model.AnnualReport, error) {
	var r model.AnnualReport
	err := DB.Get(&r, `
	SELECT id, title, year, file_url, display_order, created_at
	  FROM annual_reports WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("report_id", id).Msg("GetAnnualReportByID failed")
	}
	return r, err
}

func DeleteAnnualReport(id int) error {
	_, err := DB.Exec(`DELETE FROM annual_reports WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("report_id", id).Msg("DeleteAnnualReport failed")
	}
	return err
}

// ReorderEntities rewrites display_order for a table from an ordered id
// list. table must be one of the fixed entity table names; it is never
// user input.
func ReorderEntities(table string, orderedIDs []int) error {
	tx, err := DB.Beginx()
	if err != nil {
		return err
	}
	for pos, id := range orderedIDs {
		if _, err := tx.Exec(
			`UPDATE `+table+` SET display_order = $1 WHERE id = $2;`, pos, id); err != nil {
			_ = tx.Rollback()
			log.Error().Err(err).Str("table", table).Msg("ReorderEntities failed")
			return err
		}
	}
	return tx.Commit()
}
