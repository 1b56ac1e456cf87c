package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	assistantapp "github.com/dwikikusuma/dohsarpay/internal/assistant/app"
	authapp "github.com/dwikikusuma/dohsarpay/internal/auth/app"
	authdomain "github.com/dwikikusuma/dohsarpay/internal/auth/domain"
	cartapp "github.com/dwikikusuma/dohsarpay/internal/cart/app"
	catalogapp "github.com/dwikikusuma/dohsarpay/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/dohsarpay/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/dohsarpay/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/dohsarpay/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/dohsarpay/internal/order/app"
	orderdomain "github.com/dwikikusuma/dohsarpay/internal/order/domain"
)

// Handler wires one route per user event: the view layer calls exactly
// one of these per discrete user action and re-renders from the response.
type Handler struct {
	log        *slog.Logger
	catalog    *catalogapp.Service
	cart       *cartapp.Service
	orders     *orderapp.Service
	checkout   *checkoutapp.Service
	auth       *authapp.Service
	assistant  *assistantapp.Service
	categories []string
}

func NewHandler(
	log *slog.Logger,
	catalog *catalogapp.Service,
	cart *cartapp.Service,
	orders *orderapp.Service,
	checkout *checkoutapp.Service,
	auth *authapp.Service,
	assistant *assistantapp.Service,
	categories []string,
) *Handler {
	return &Handler{
		log:        log,
		catalog:    catalog,
		cart:       cart,
		orders:     orders,
		checkout:   checkout,
		auth:       auth,
		assistant:  assistant,
		categories: categories,
	}
}

func (h *Handler) fail(c echo.Context, err error) error {
	status, code, msg := httpStatusFromErr(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", slog.String("path", c.Path()), slog.Any("err", err))
	}
	return c.JSON(status, errorResponse{Code: code, Message: msg})
}

func (h *Handler) identity(c echo.Context) (authdomain.Identity, bool) {
	return h.auth.Identify(c.Request().Header.Get(AuthHeader))
}

// requireAdmin blocks the admin screens for anonymous and customer
// sessions; they get a denied response, never a partial render.
func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := h.identity(c)
		if !ok || !id.IsAdmin() {
			return h.fail(c, ErrForbidden)
		}
		return next(c)
	}
}

// --- catalog ---

type bookResponse struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"original_price,omitempty"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	CoverURL      string  `json:"cover_url"`
	Description   string  `json:"description"`
	AuthorBio     string  `json:"author_bio,omitempty"`
}

func toBookResponse(b catalogdomain.Book) bookResponse {
	return bookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Price:         b.Price,
		OriginalPrice: b.OriginalPrice,
		Category:      b.Category,
		Rating:        b.Rating,
		CoverURL:      b.CoverURL,
		Description:   b.Description,
		AuthorBio:     b.AuthorBio,
	}
}

func toBookResponses(books []catalogdomain.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

type bookPayload struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"original_price,omitempty"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	CoverURL      string  `json:"cover_url"`
	Description   string  `json:"description"`
	AuthorBio     string  `json:"author_bio,omitempty"`
}

func (p bookPayload) toInput() catalogapp.BookInput {
	return catalogapp.BookInput{
		Title:         p.Title,
		Author:        p.Author,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Rating:        p.Rating,
		CoverURL:      p.CoverURL,
		Description:   p.Description,
		AuthorBio:     p.AuthorBio,
	}
}

func (h *Handler) listBooks(c echo.Context) error {
	category := c.QueryParam("category")
	query := c.QueryParam("q")

	books, err := h.catalog.Filter(c.Request().Context(), category, query)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toBookResponses(books))
}

func (h *Handler) getBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, catalogapp.ErrInvalidInput)
	}

	book, err := h.catalog.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toBookResponse(book))
}

func (h *Handler) listCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.categories)
}

func (h *Handler) addBook(c echo.Context) error {
	var p bookPayload
	if err := c.Bind(&p); err != nil {
		return h.fail(c, catalogapp.ErrInvalidInput)
	}

	book, err := h.catalog.AddBook(c.Request().Context(), p.toInput())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toBookResponse(book))
}

func (h *Handler) updateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, catalogapp.ErrInvalidInput)
	}

	var p bookPayload
	if err := c.Bind(&p); err != nil {
		return h.fail(c, catalogapp.ErrInvalidInput)
	}

	book, err := h.catalog.UpdateBook(c.Request().Context(), id, p.toInput())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toBookResponse(book))
}

func (h *Handler) deleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, catalogapp.ErrInvalidInput)
	}

	if err := h.catalog.DeleteBook(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// --- cart ---

type cartResponse struct {
	Lines []cartLine `json:"lines"`
	Total int64      `json:"total"`
	Count int        `json:"count"`
}

type cartLine struct {
	BookID   int    `json:"book_id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Price    int64  `json:"price"`
	CoverURL string `json:"cover_url"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) getCart(c echo.Context) error {
	cart, err := h.cart.GetCart(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.fail(c, err)
	}

	resp := cartResponse{Lines: make([]cartLine, 0, len(cart.Lines)), Total: cart.Total(), Count: cart.Count()}
	for _, ln := range cart.Lines {
		resp.Lines = append(resp.Lines, cartLine{
			BookID:   ln.BookID,
			Title:    ln.Title,
			Author:   ln.Author,
			Price:    ln.Price,
			CoverURL: ln.CoverURL,
			Quantity: ln.Quantity,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) addToCart(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, cartapp.ErrInvalidInput)
	}

	if err := h.cart.AddItem(c.Request().Context(), sessionID(c), id); err != nil {
		return h.fail(c, err)
	}
	return h.getCart(c)
}

func (h *Handler) removeFromCart(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, cartapp.ErrInvalidInput)
	}

	if err := h.cart.RemoveItem(c.Request().Context(), sessionID(c), id); err != nil {
		return h.fail(c, err)
	}
	return h.getCart(c)
}

// --- checkout / orders ---

type quoteResponse struct {
	Lines []quoteLine `json:"lines"`
	Total int64       `json:"total"`
}

type quoteLine struct {
	BookID       int    `json:"book_id"`
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	LineTotal    int64  `json:"line_total"`
	CurrentPrice int64  `json:"current_price"`
	PriceChanged bool   `json:"price_changed"`
	Delisted     bool   `json:"delisted"`
}

func toQuoteResponse(q checkoutdomain.Quote) quoteResponse {
	resp := quoteResponse{Lines: make([]quoteLine, 0, len(q.Lines)), Total: q.Total}
	for _, ln := range q.Lines {
		resp.Lines = append(resp.Lines, quoteLine{
			BookID:       ln.BookID,
			Title:        ln.Title,
			Quantity:     ln.Quantity,
			UnitPrice:    ln.UnitPrice,
			LineTotal:    ln.LineTotal,
			CurrentPrice: ln.CurrentPrice,
			PriceChanged: ln.PriceChanged,
			Delisted:     ln.Delisted,
		})
	}
	return resp
}

func (h *Handler) quote(c echo.Context) error {
	q, err := h.checkout.Quote(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toQuoteResponse(q))
}

type orderResponse struct {
	ID      string      `json:"id"`
	User    string      `json:"user"`
	Date    time.Time   `json:"date"`
	Status  string      `json:"status"`
	Total   int64       `json:"total"`
	Address string      `json:"address"`
	Payment string      `json:"payment"`
	Items   int         `json:"items"`
	Lines   []orderLine `json:"order_lines"`
}

type orderLine struct {
	BookID    int    `json:"book_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

func toOrderResponse(o orderdomain.Order) orderResponse {
	resp := orderResponse{
		ID:      o.ID,
		User:    o.User,
		Date:    o.Date,
		Status:  o.Status,
		Total:   o.Total,
		Address: o.Address,
		Payment: o.Payment,
		Items:   o.Items(),
		Lines:   make([]orderLine, 0, len(o.Lines)),
	}
	for _, ln := range o.Lines {
		resp.Lines = append(resp.Lines, orderLine{
			BookID:    ln.BookID,
			Title:     ln.Title,
			UnitPrice: ln.UnitPrice,
			Quantity:  ln.Quantity,
			LineTotal: ln.LineTotal,
		})
	}
	return resp
}

type placeOrderPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Payment string `json:"payment"`
}

func (h *Handler) placeOrder(c echo.Context) error {
	var p placeOrderPayload
	if err := c.Bind(&p); err != nil {
		return h.fail(c, orderapp.ErrMissingShipping)
	}

	ctx := c.Request().Context()
	sid := sessionID(c)

	cart, err := h.cart.GetCart(ctx, sid)
	if err != nil {
		return h.fail(c, err)
	}

	lines := make([]orderdomain.LineRequest, 0, len(cart.Lines))
	for _, ln := range cart.Lines {
		lines = append(lines, orderdomain.LineRequest{
			BookID:    ln.BookID,
			Title:     ln.Title,
			UnitPrice: ln.Price,
			Quantity:  ln.Quantity,
		})
	}

	actor := p.Name
	if id, ok := h.identity(c); ok {
		actor = id.Name
	}

	order, err := h.orders.PlaceOrder(ctx, orderdomain.PlaceOrderRequest{
		Actor: actor,
		Shipping: orderdomain.ShippingInfo{
			Name:    p.Name,
			Address: p.Address,
			Payment: p.Payment,
		},
		Lines: lines,
	})
	if err != nil {
		// A rejected checkout leaves the cart exactly as it was.
		return h.fail(c, err)
	}

	if err := h.cart.Clear(ctx, sid); err != nil {
		h.log.Error("cart clear after checkout failed", slog.String("order", order.ID), slog.Any("err", err))
	}

	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *Handler) listOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, out)
}

// --- auth ---

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

func (h *Handler) login(c echo.Context) error {
	var p loginPayload
	if err := c.Bind(&p); err != nil {
		return h.fail(c, authapp.ErrBadCredentials)
	}

	sess, err := h.auth.Login(p.Username, p.Password)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: sess.Token,
		Role:  sess.Identity.Role,
		Name:  sess.Identity.Name,
	})
}

func (h *Handler) logout(c echo.Context) error {
	h.auth.Logout(c.Request().Header.Get(AuthHeader))
	return c.NoContent(http.StatusNoContent)
}

// --- chat ---

type chatTurn struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Text string `json:"text"`
}

func (h *Handler) chatHistory(c echo.Context) error {
	turns := h.assistant.History(sessionID(c))

	out := make([]chatTurn, 0, len(turns))
	for _, t := range turns {
		out = append(out, chatTurn{ID: t.ID, Role: t.Role, Text: t.Text})
	}
	return c.JSON(http.StatusOK, out)
}

type chatPayload struct {
	Message string `json:"message"`
}

// sendChat streams the assistant reply as plain-text fragments, flushed
// as they arrive. Errors raised before the first fragment become normal
// JSON errors; once streaming has begun the connection is simply closed
// and the transcript keeps only the user's turn.
func (h *Handler) sendChat(c echo.Context) error {
	var p chatPayload
	if err := c.Bind(&p); err != nil {
		return h.fail(c, assistantapp.ErrEmptyMessage)
	}

	res := c.Response()
	streaming := false

	_, err := h.assistant.Send(c.Request().Context(), sessionID(c), p.Message, func(chunk string) error {
		if !streaming {
			res.Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
			res.Header().Set("X-Accel-Buffering", "no")
			res.WriteHeader(http.StatusOK)
			streaming = true
		}
		if _, werr := res.Write([]byte(chunk)); werr != nil {
			return werr
		}
		res.Flush()
		return nil
	})
	if err != nil {
		if streaming {
			h.log.Error("chat stream aborted", slog.Any("err", err))
			return nil
		}
		return h.fail(c, err)
	}

	if !streaming {
		return c.NoContent(http.StatusOK)
	}
	return nil
}
