package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	maxJSONBody         = 1 << 20
	maxMultipartMemory  = 8 << 20
	maxOrderRequestBody = 32 << 20
)

// pathUUID reads a uuid path parameter, answering 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, v *validator.Validate, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if err := v.Var(id, "required,uuid"); err != nil {
		writeInvalidParam(w, name, "uuid")
		return "", false
	}
	return id, true
}

// decodeJSON reads a JSON body into dst and validates it.
func decodeJSON(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) entities.FieldErrors {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return entities.FieldErrors{"body": "invalid json"}
	}
	if err := v.Struct(dst); err != nil {
		return entities.FieldErrors(utils.ValidationFields(err))
	}
	return nil
}

// orderForm is the payload of an order create or edit: the JSON document and,
// for multipart requests, an optional image part.
type orderForm struct {
	data  []byte
	image *entities.Image
	file  multipart.File
}

func (f orderForm) Close() {
	if f.file != nil {
		f.file.Close()
	}
}

// imageRemoved reports an explicit "imagenUrl": null in the document.
func (f orderForm) imageRemoved() bool {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(f.data, &raw); err != nil {
		return false
	}
	v, ok := raw["imagenUrl"]
	return ok && strings.TrimSpace(string(v)) == "null"
}

// parseOrderForm accepts multipart/form-data with a "data" JSON field and an
// optional "imagen" file, or a plain JSON body.
func parseOrderForm(w http.ResponseWriter, r *http.Request) (orderForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxOrderRequestBody)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
		if err != nil {
			return orderForm{}, err
		}
		return orderForm{data: data}, nil
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return orderForm{}, err
	}

	form := orderForm{data: []byte(r.FormValue("data"))}

	file, header, err := r.FormFile("imagen")
	if errors.Is(err, http.ErrMissingFile) {
		return form, nil
	}
	if err != nil {
		return orderForm{}, err
	}

	form.file = file
	form.image = &entities.Image{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}
	return form, nil
}

func parseOrderFilter(q url.Values) (entities.OrderFilter, entities.FieldErrors) {
	f := entities.OrderFilter{
		Search:    strings.TrimSpace(q.Get("search")),
		SortField: entities.SortByCreatedAt,
		SortDesc:  true,
	}
	fields := entities.FieldErrors{}

	for _, raw := range q["estado"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.ToUpper(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			status := entities.OrderStatus(part)
			if !status.IsValid() {
				fields["estado"] = "oneof"
				continue
			}
			f.Statuses = append(f.Statuses, status)
		}
	}

	if page, ok := parsePositive(q, "page", fields); ok {
		if page > entities.MaxPage {
			fields["page"] = "max"
		}
		f.Page = page
	}
	if limit, ok := parsePositive(q, "limit", fields); ok {
		if limit > entities.MaxPageSize {
			fields["limit"] = "max"
		}
		f.PageSize = limit
	}

	if v := q.Get("orderBy"); v != "" {
		field := entities.OrderSortField(v)
		if !field.IsValid() {
			fields["orderBy"] = "oneof"
		}
		f.SortField = field
	}

	switch strings.ToLower(q.Get("orderDirection")) {
	case "", "desc":
	case "asc":
		f.SortDesc = false
	default:
		fields["orderDirection"] = "oneof"
	}

	if len(fields) > 0 {
		return entities.OrderFilter{}, fields
	}
	return f, nil
}

func parseClientFilter(q url.Values) (entities.ClientFilter, entities.FieldErrors) {
	f := entities.ClientFilter{Search: strings.TrimSpace(q.Get("search"))}
	fields := entities.FieldErrors{}

	if page, ok := parsePositive(q, "page", fields); ok {
		if page > entities.MaxPage {
			fields["page"] = "max"
		}
		f.Page = page
	}
	if limit, ok := parsePositive(q, "limit", fields); ok {
		if limit > entities.MaxPageSize {
			fields["limit"] = "max"
		}
		f.PageSize = limit
	}

	if len(fields) > 0 {
		return entities.ClientFilter{}, fields
	}
	return f, nil
}

func parsePositive(q url.Values, name string, fields entities.FieldErrors) (int, bool) {
	v := q.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		fields[name] = "gte=1"
		return 0, false
	}
	return n, true
}

func parseOptionalBool(q url.Values, name string, fields entities.FieldErrors) *bool {
	v := q.Get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fields[name] = "boolean"
		return nil
	}
	return &b
}
