package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Server struct {
	cfg     Config
	client  *http.Client
	baseURL string
}

func NewServer(cfg Config) *Server {
	return &Server{
		cfg:     cfg,
		client:  &http.Client{},
		baseURL: "https://" + rumbleHost,
	}
}

func (s *Server) Routes(e *echo.Echo) {
	e.GET("/feed", s.FeedHandler)
	e.GET("/seconds", s.SecondsQueryHandler)
	e.POST("/seconds", s.SecondsBodyHandler)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
}

func (s *Server) FeedHandler(c echo.Context) error {

	req, err := parseLink(c.QueryParam("link"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	feed, err := GetFeed(c.Request().Context(), s.client, s.baseURL, s.cfg, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("there was an error fetching the feed: %s", err))
	}

	var buf bytes.Buffer
	if err := feed.Encode(&buf); err != nil {
		return fmt.Errorf("error encoding feed: %w", err)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, buf.Bytes())
}

type secondsResponse struct {
	Value   string `json:"value"`
	Seconds int    `json:"seconds"`
}

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (s *Server) SecondsQueryHandler(c echo.Context) error {
	if !c.QueryParams().Has("value") {
		return echo.NewHTTPError(http.StatusBadRequest, "missing value parameter")
	}
	return respondSeconds(c, c.QueryParam("value"))
}

// SecondsBodyHandler takes {"value": ...} where value may be any JSON type.
func (s *Server) SecondsBodyHandler(c echo.Context) error {
	var body map[string]json.RawMessage
	dec := json.NewDecoder(c.Request().Body)
	if err := dec.Decode(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not decode request body")
	}
	if _, err := dec.Token(); err != io.EOF {
		return echo.NewHTTPError(http.StatusBadRequest, "unexpected data after request body")
	}

	raw, ok := body["value"]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "missing value field")
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not decode value")
	}
	return respondSeconds(c, value)
}

func respondSeconds(c echo.Context, value any) error {
	seconds, err := Convert(value)
	if err != nil {
		return conversionError(err)
	}
	return c.JSON(http.StatusOK, secondsResponse{Value: value.(string), Seconds: seconds})
}

func conversionError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrNotAString):
		return echo.NewHTTPError(http.StatusBadRequest, errorResponse{Kind: "NotAString", Message: err.Error()})
	case errors.Is(err, ErrInvalidFormat):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errorResponse{Kind: "InvalidFormat", Message: err.Error()})
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
