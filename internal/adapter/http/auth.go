package httpadapter

import (
	"net/http"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Auth.Me(r.Context(), actorFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type retailerProfile struct {
	OutletCode string `json:"outlet_code" validate:"notblank"`
	ShopName   string `json:"shop_name" validate:"notblank"`
	OwnerName  string `json:"owner_name"`
	City       string `json:"city"`
	State      string `json:"state"`
	Phone      string `json:"phone"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type employeeProfile struct {
	EmployeeCode string `json:"employee_code" validate:"notblank"`
	Name         string `json:"name"`
	City         string `json:"city"`
	State        string `json:"state"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
}

type clientProfile struct {
	Organization string `json:"organization" validate:"notblank"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email" validate:"omitempty,email"`
}

type createUserReq struct {
	Name     string           `json:"name" validate:"notblank"`
	Email    string           `json:"email" validate:"required,email"`
	Phone    string           `json:"phone"`
	Password string           `json:"password" validate:"required,min=8"`
	Role     string           `json:"role" validate:"required,oneof=admin client employee retailer"`
	Retailer *retailerProfile `json:"retailer" validate:"required_if=Role retailer"`
	Employee *employeeProfile `json:"employee" validate:"required_if=Role employee"`
	Client   *clientProfile   `json:"client" validate:"required_if=Role client"`
}

func (req createUserReq) toDomain() port.CreateAccountReq {
	out := port.CreateAccountReq{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	}
	if p := req.Retailer; p != nil {
		out.Profile.Retailer = &domain.Retailer{
			OutletCode: p.OutletCode, ShopName: p.ShopName, OwnerName: p.OwnerName,
			City: p.City, State: p.State, Phone: p.Phone, Email: p.Email,
		}
	}
	if p := req.Employee; p != nil {
		out.Profile.Employee = &domain.Employee{
			EmployeeCode: p.EmployeeCode, Name: p.Name,
			City: p.City, State: p.State, Phone: p.Phone, Email: p.Email,
		}
	}
	if p := req.Client; p != nil {
		out.Profile.Client = &domain.Client{Organization: p.Organization, ContactName: p.ContactName, Email: p.Email}
	}
	return out
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if !h.decode(w, r, &req) {
		return
	}
	u, err := h.svc.Auth.CreateAccount(r.Context(), req.toDomain())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) handleListRetailers(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Auth.ListRetailers(r.Context())
	respond(h, w, r, list, err)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Auth.ListEmployees(r.Context())
	respond(h, w, r, list, err)
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Auth.ListClients(r.Context())
	respond(h, w, r, list, err)
}

// respond writes v with 200 or the mapped error.
func respond[T any](h *Handler, w http.ResponseWriter, r *http.Request, v T, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
