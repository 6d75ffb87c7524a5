package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api/admin/control/packets"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
	"github.com/isevvweb/ISE-Website-sub000/internal/storage"
)

type EntityController struct {
	store   db.Store
	storage storage.Storage
}

// EntityModule mounts management for the website's ordered content:
// board members, trustees, donation causes, youth programs, and annual
// reports.
func EntityModule(store db.Store, storage storage.Storage) api.Module {
	ctl := &EntityController{store: store, storage: storage}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/board", ctl.listBoardMembers)
		c.POST("/board", ctl.createBoardMember)
		c.PUT("/board/:id", ctl.updateBoardMember)
		c.DELETE("/board/:id", ctl.deleteBoardMember)
		c.POST("/board/reorder", ctl.reorderBoardMembers)

		c.GET("/trustees", ctl.listTrustees)
		c.POST("/trustees", ctl.createTrustee)
		c.PUT("/trustees/:id", ctl.updateTrustee)
		c.DELETE("/trustees/:id", ctl.deleteTrustee)
		c.POST("/trustees/reorder", ctl.reorderTrustees)

		c.GET("/causes", ctl.listCauses)
		c.POST("/causes", ctl.createCause)
		c.PUT("/causes/:id", ctl.updateCause)
		c.DELETE("/causes/:id", ctl.deleteCause)
		c.POST("/causes/reorder", ctl.reorderCauses)

		c.GET("/youth", ctl.listYouthPrograms)
		c.POST("/youth", ctl.createYouthProgram)
		c.PUT("/youth/:id", ctl.updateYouthProgram)
		c.DELETE("/youth/:id", ctl.deleteYouthProgram)
		c.POST("/youth/:id/subprograms", ctl.createYouthSubprogram)
		c.DELETE("/subprograms/:id", ctl.deleteYouthSubprogram)

		c.GET("/reports", ctl.listReports)
		c.POST("/reports", ctl.createReport)
		c.DELETE("/reports/:id", ctl.deleteReport)
	})
}

func pathID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	return id, nil
}

func (e *EntityController) listBoardMembers(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	out, err := e.store.ListBoardMembers()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list board members"}
	}
	return out, nil
}

func (e *EntityController) createBoardMember(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.BoardMemberRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	created, err := e.store.CreateBoardMember(model.BoardMember{
		Name: request.Name, Position: request.Position, Bio: request.Bio,
		PhotoURL: request.PhotoURL, DisplayOrder: request.DisplayOrder,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create board member"}
	}
	return created, nil
}

func (e *EntityController) updateBoardMember(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.BoardMemberRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := e.store.GetBoardMemberByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "board member not found"}
	}
	updated, err := e.store.UpdateBoardMember(model.BoardMember{
		ID: id, Name: request.Name, Position: request.Position, Bio: request.Bio,
		PhotoURL: request.PhotoURL, DisplayOrder: request.DisplayOrder,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update board member"}
	}
	return updated, nil
}

func (e *EntityController) deleteBoardMember(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	member, err := e.store.GetBoardMemberByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "board member not found"}
	}
	if err := e.store.DeleteBoardMember(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete board member"}
	}
	e.cleanupFile(member.PhotoURL)
	return gin.H{"deleted": id}, nil
}

func (e *EntityController) reorderBoardMembers(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return e.reorder(ctx, "board_members")
}

func (e *EntityController) listTrustees(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	out, err := e.store.ListTrustees()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list trustees"}
	}
	return out, nil
}

func (e *EntityController) createTrustee(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.TrusteeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	created, err := e.store.CreateTrustee(model.Trustee{
		Name: request.Name, Title: request.Title,
		PhotoURL: request.PhotoURL, DisplayOrder: request.DisplayOrder,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create trustee"}
	}
	return created, nil
}

func (e *EntityController) updateTrustee(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.TrusteeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	updated, err := e.store.UpdateTrustee(model.Trustee{
		ID: id, Name: request.Name, Title: request.Title,
		PhotoURL: request.PhotoURL, DisplayOrder: request.DisplayOrder,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update trustee"}
	}
	return updated, nil
}

func (e *EntityController) deleteTrustee(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := e.store.DeleteTrustee(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete trustee"}
	}
	return gin.H{"deleted": id}, nil
}

func (e *EntityController) reorderTrustees(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return e.reorder(ctx, "trustees")
}

func (e *EntityController) listCauses(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	out, err := e.store.ListDonationCauses(false)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list donation causes"}
	}
	return out, nil
}

func (e *EntityController) createCause(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.DonationCauseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	cause := model.DonationCause{
		Name: request.Name, Description: request.Description, DonateURL: request.DonateURL,
		ImageURL: request.ImageURL, IsActive: true, DisplayOrder: request.DisplayOrder,
	}
	if request.IsActive != nil {
		cause.IsActive = *request.IsActive
	}
	created, err := e.store.CreateDonationCause(cause)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create donation cause"}
	}
	return created, nil
}

func (e *EntityController) updateCause(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.DonationCauseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := e.store.GetDonationCauseByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "donation cause not found"}
	}
	cause := model.DonationCause{
		ID: id, Name: request.Name, Description: request.Description, DonateURL: request.DonateURL,
		ImageURL: request.ImageURL, IsActive: true, DisplayOrder: request.DisplayOrder,
	}
	if request.IsActive != nil {
		cause.IsActive = *request.IsActive
	}
	updated, err := e.store.UpdateDonationCause(cause)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update donation cause"}
	}
	return updated, nil
}

func (e *EntityController) deleteCause(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	cause, err := e.store.GetDonationCauseByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "donation cause not found"}
	}
	if err := e.store.DeleteDonationCause(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete donation cause"}
	}
	e.cleanupFile(cause.ImageURL)
	return gin.H{"deleted": id}, nil
}

func (e *EntityController) reorderCauses(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return e.reorder(ctx, "donation_causes")
}

func (e *EntityController) listYouthPrograms(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	out, err := e.store.ListYouthPrograms()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list youth programs"}
	}
	return out, nil
}

func (e *EntityController) createYouthProgram(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.YouthProgramRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	created, err := e.store.CreateYouthProgram(model.YouthProgram{
		Name: request.Name, Description: request.Description,
		ImageURL: request.ImageURL, DisplayOrder: request.DisplayOrder,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create youth program"}
	}
	return created, nil
}

func (e *EntityController) updateYouthProgram(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.YouthProgramRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := e.store.GetYouthProgramByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "youth program not found"}
	}
	updated, err := e.store.UpdateYouthProgram(model.YouthProgram{
		ID: id, Name: request.Name, Description: request.Description,
		ImageURL: request.ImageURL, DisplayOrder: request.DisplayOrder,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update youth program"}
	}
	return updated, nil
}

func (e *EntityController) deleteYouthProgram(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	program, err := e.store.GetYouthProgramByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "youth program not found"}
	}
	if err := e.store.DeleteYouthProgram(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete youth program"}
	}
	e.cleanupFile(program.ImageURL)
	return gin.H{"deleted": id}, nil
}

func (e *EntityController) createYouthSubprogram(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	programID, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.YouthSubprogramRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := e.store.GetYouthProgramByID(programID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "youth program not found"}
	}
	created, err := e.store.CreateYouthSubprogram(model.YouthSubprogram{
		ProgramID: programID, Name: request.Name, Schedule: request.Schedule,
		AgeRange: request.AgeRange, DisplayOrder: request.DisplayOrder,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create subprogram"}
	}
	return created, nil
}

func (e *EntityController) deleteYouthSubprogram(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := e.store.DeleteYouthSubprogram(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete subprogram"}
	}
	return gin.H{"deleted": id}, nil
}

func (e *EntityController) listReports(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	out, err := e.store.ListAnnualReports()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list annual reports"}
	}
	return out, nil
}

// createReport takes a multipart form: title, year, display_order, and
// the PDF under "file".
func (e *EntityController) createReport(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	title := ctx.PostForm("title")
	year, err := strconv.Atoi(ctx.PostForm("year"))
	if title == "" || err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "title and numeric year are required"}
	}
	displayOrder, _ := strconv.Atoi(ctx.PostForm("display_order"))

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "report file is required"}
	}
	url, err := e.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Msg("annual report upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store report file"}
	}

	created, err := e.store.CreateAnnualReport(model.AnnualReport{
		Title: title, Year: year, FileURL: url, DisplayOrder: displayOrder,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create annual report"}
	}
	return created, nil
}

func (e *EntityController) deleteReport(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	report, err := e.store.GetAnnualReportByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "annual report not found"}
	}
	if err := e.store.DeleteAnnualReport(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete annual report"}
	}
	e.cleanupFile(&report.FileURL)
	return gin.H{"deleted": id}, nil
}

func (e *EntityController) reorder(ctx *gin.Context, table string) (any, *api.APIError) {
	var request packets.ReorderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := e.store.ReorderEntities(table, request.IDs); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reorder"}
	}
	return gin.H{"reordered": len(request.IDs)}, nil
}

// cleanupFile removes an orphaned upload after its owning row is gone.
// Failure only logs; the delete already succeeded.
func (e *EntityController) cleanupFile(fileURL *string) {
	if fileURL == nil || *fileURL == "" {
		return
	}
	if err := e.storage.DeleteFile(*fileURL); err != nil {
		log.Warn().Err(err).Str("url", *fileURL).Msg("file cleanup failed")
	}
}
