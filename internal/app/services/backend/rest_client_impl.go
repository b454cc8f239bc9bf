package backend

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type restClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewRestClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) RestClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &restClient{
		BaseUrl:    strings.TrimSuffix(baseUrl, "/"),
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (c *restClient) Get(ctx context.Context, path, token string) (*Envelope, error) {
	return c.do(ctx, constvars.MethodGet, path, token, nil)
}

func (c *restClient) Post(ctx context.Context, path, token string, body interface{}) (*Envelope, error) {
	return c.do(ctx, constvars.MethodPost, path, token, body)
}

func (c *restClient) Put(ctx context.Context, path, token string, body interface{}) (*Envelope, error) {
	return c.do(ctx, constvars.MethodPut, path, token, body)
}

func (c *restClient) Delete(ctx context.Context, path, token string) (*Envelope, error) {
	return c.do(ctx, constvars.MethodDelete, path, token, nil)
}

func (c *restClient) do(ctx context.Context, method, path, token string, body interface{}) (*Envelope, error) {
	requestID := utils.GetRequestID(ctx)

	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("restClient request marshal failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, reader)
	if err != nil {
		c.Log.Error("restClient request build failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("restClient request send failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	// A 401 from outside the auth group means the session is dead. Inside
	// the auth group it is an ordinary validation failure (wrong OTP) and
	// flows through as a normal failure envelope.
	if resp.StatusCode == constvars.StatusUnauthorized && !isAuthEndpoint(path) {
		c.Log.Warn("restClient received 401 outside auth group",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
		)
		return nil, exceptions.ErrSessionExpired()
	}

	if resp.StatusCode >= constvars.StatusInternalServerError {
		c.Log.Error("restClient backend server error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendStatus(resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("restClient response read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	envelope := NormalizeEnvelope(bodyBytes)
	c.Log.Debug("restClient request completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Bool(constvars.LoggingSuccessKey, envelope.Success),
	)
	return envelope, nil
}

func isAuthEndpoint(path string) bool {
	return strings.Contains(path, constvars.BackendAuthGroupPrefix)
}
