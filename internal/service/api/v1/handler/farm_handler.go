package handler

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/farm-server/internal/pkg/validator"
	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	"github.com/darkkaiser/farm-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/farm-server/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// binder 경로/쿼리/본문 중 필요한 부분만 명시적으로 바인딩하기 위해 사용합니다.
var binder = &echo.DefaultBinder{}

// ListFarmsHandler godoc
// @Summary 농장 목록 조회
// @Description 등록된 모든 농장을 ID 오름차순으로 반환합니다. 농장이 없으면 빈 배열을 반환합니다.
// @Tags Farm
// @Produce json
// @Success 200 {array} response.FarmResponse "농장 목록"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/farms [get]
func (h *Handler) ListFarmsHandler(c echo.Context) error {
	farms, err := h.farmService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.NewFarmListResponse(farms))
}

// GetFarmHandler godoc
// @Summary 농장 단건 조회
// @Tags Farm
// @Produce json
// @Param id path int true "농장 ID" minimum(1)
// @Success 200 {object} response.FarmResponse "농장"
// @Failure 400 {object} response.ErrorResponse "잘못된 농장 ID"
// @Failure 404 {object} response.ErrorResponse "농장 없음"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/farms/{id} [get]
func (h *Handler) GetFarmHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	f, err := h.farmService.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.NewFarmResponse(f))
}

// CreateFarmHandler godoc
// @Summary 농장 등록
// @Description 새 농장을 등록합니다. 농장명은 대소문자 구분 없이 유일해야 합니다.
// @Description
// @Description ```bash
// @Description curl -X POST "http://localhost:8080/api/v1/farms" \
// @Description   -H "Content-Type: application/json" \
// @Description   -d '{"name":"Sunrise","location":"Valencia","area":12.5,"creation_date":"2010-03-15"}'
// @Description ```
// @Tags Farm
// @Accept json
// @Produce json
// @Param farm body request.FarmRequest true "농장 정보"
// @Success 201 {object} response.FarmResponse "등록된 농장"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (필수 필드 누락, JSON 형식 오류 등)"
// @Failure 409 {object} response.ErrorResponse "같은 이름의 농장이 이미 존재"
// @Failure 415 {object} response.ErrorResponse "Content-Type이 application/json이 아님"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/farms [post]
func (h *Handler) CreateFarmHandler(c echo.Context) error {
	req, err := bindFarmRequest(c)
	if err != nil {
		return err
	}

	in, err := req.ToInput()
	if err != nil {
		return NewErrValidationFailed(err.Error())
	}

	f, err := h.farmService.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"farm_id": f.ID,
		"name":    f.Name,
	}).Info("농장 등록 완료")

	return c.JSON(http.StatusCreated, response.NewFarmResponse(f))
}

// UpdateFarmHandler godoc
// @Summary 농장 수정
// @Description 농장 정보를 요청 본문으로 전체 교체합니다. 존재하지 않는 ID는 새로 생성하지 않고 404를 반환합니다.
// @Tags Farm
// @Accept json
// @Produce json
// @Param id path int true "농장 ID" minimum(1)
// @Param farm body request.FarmRequest true "농장 정보"
// @Success 200 {object} response.FarmResponse "수정된 농장"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "농장 없음"
// @Failure 409 {object} response.ErrorResponse "같은 이름의 농장이 이미 존재"
// @Failure 415 {object} response.ErrorResponse "Content-Type이 application/json이 아님"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/farms/{id} [put]
func (h *Handler) UpdateFarmHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	req, err := bindFarmRequest(c)
	if err != nil {
		return err
	}

	in, err := req.ToInput()
	if err != nil {
		return NewErrValidationFailed(err.Error())
	}

	f, err := h.farmService.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	h.log(c).WithField("farm_id", f.ID).Info("농장 수정 완료")

	return c.JSON(http.StatusOK, response.NewFarmResponse(f))
}

// DeleteFarmHandler godoc
// @Summary 농장 삭제
// @Tags Farm
// @Param id path int true "농장 ID" minimum(1)
// @Success 204 "삭제 완료"
// @Failure 400 {object} response.ErrorResponse "잘못된 농장 ID"
// @Failure 404 {object} response.ErrorResponse "농장 없음"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/farms/{id} [delete]
func (h *Handler) DeleteFarmHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.farmService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.log(c).WithField("farm_id", id).Info("농장 삭제 완료")

	return c.NoContent(http.StatusNoContent)
}

// SearchFarmsHandler godoc
// @Summary 농장 검색
// @Description 농장명과 위치로 검색합니다. 두 조건 모두 선택 사항이며 대소문자를 구분하지 않는 부분 일치입니다.
// @Description 조건을 모두 생략하면 전체 목록과 같고, 둘 다 지정하면 두 조건을 모두 만족하는 농장만 반환합니다.
// @Tags Farm
// @Produce json
// @Param name query string false "농장명 (부분 일치, 최대 100자)"
// @Param location query string false "위치 (부분 일치, 최대 100자)"
// @Success 200 {array} response.FarmResponse "검색 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 검색 조건"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/farms/search [get]
func (h *Handler) SearchFarmsHandler(c echo.Context) error {
	req := new(request.FarmSearchRequest)
	if err := binder.BindQueryParams(c, req); err != nil {
		return NewErrInvalidQuery()
	}

	farms, err := h.farmService.FindByCriteria(c.Request().Context(), req.ToCriteria())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.NewFarmListResponse(farms))
}

// parseID 경로의 농장 ID를 양의 정수로 해석합니다.
func parseID(c echo.Context) (int64, error) {
	raw := c.Param(constants.ParamID)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewErrInvalidID(raw)
	}

	return id, nil
}

// bindFarmRequest 요청 본문을 바인딩하고 태그 기반 검증을 수행합니다.
func bindFarmRequest(c echo.Context) (*request.FarmRequest, error) {
	req := new(request.FarmRequest)
	if err := binder.BindBody(c, req); err != nil {
		return nil, NewErrInvalidBody()
	}

	if err := validator.Struct(req); err != nil {
		return nil, NewErrValidationFailed(validator.FormatValidationError(err))
	}

	return req, nil
}
