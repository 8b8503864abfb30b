package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := New(Options{Log: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func login(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	body := `{"email":"admin@melfak.local","password":"admin123"}`
	resp, err := http.Post(ts.URL+"/Authentication/login", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer resp.Body.Close()

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if !env.Success || env.Data.Token == "" {
		t.Fatalf("login failed: success=%v token=%q", env.Success, env.Data.Token)
	}
	return env.Data.Token
}

func doJSON(t *testing.T, ts *httptest.Server, token, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope from %s: %v (%s)", path, err, raw)
	}
	return resp, env
}

func doForm(t *testing.T, ts *httptest.Server, token, method, path string, fields map[string]string) envelope {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope from %s: %v", path, err)
	}
	return env
}

func dataID(t *testing.T, env envelope) string {
	t.Helper()
	m, okAssert := env.Data.(map[string]interface{})
	if !okAssert {
		t.Fatalf("data is not an object: %#v", env.Data)
	}
	id, _ := m["id"].(string)
	if id == "" {
		t.Fatalf("data has no id: %#v", m)
	}
	return id
}

func TestMissingTokenAnswers401Envelope(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/Sections/getSections")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("401 body is not an envelope: %v", err)
	}
	if env.Success || env.StatusCode != http.StatusUnauthorized {
		t.Fatalf("envelope = %+v, want success=false statusCode=401", env)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, ts, "not-a-jwt", http.MethodGet, "/Sections/getSections", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestWrongPasswordFailsWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	resp, env := doJSON(t, ts, "", http.MethodPost, "/Authentication/login",
		`{"email":"admin@melfak.local","password":"wrong"}`)
	if resp.StatusCode >= 500 {
		t.Fatalf("status = %d, want non-5xx", resp.StatusCode)
	}
	if env.Success {
		t.Fatal("expected success=false for wrong password")
	}
}

func TestSectionLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	_, created := doJSON(t, ts, token, http.MethodPost, "/Sections/addSection",
		`{"arTitle":"الخدمات","enTitle":"Services","pageCode":"home"}`)
	if !created.Success {
		t.Fatalf("addSection failed: %s", created.Message)
	}
	id := dataID(t, created)

	_, updated := doJSON(t, ts, token, http.MethodPut, "/Sections/updateSection?id="+id,
		`{"arTitle":"الأقسام","enTitle":"Sections"}`)
	if !updated.Success {
		t.Fatalf("updateSection failed: %s", updated.Message)
	}

	_, list := doJSON(t, ts, token, http.MethodGet, "/Sections/getSections", "")
	raw, _ := json.Marshal(list.Data)
	if !bytes.Contains(raw, []byte("Sections")) {
		t.Fatalf("getSections does not reflect update: %s", raw)
	}

	_, deleted := doJSON(t, ts, token, http.MethodDelete, "/Sections/deleteSection?id="+id, "")
	if !deleted.Success {
		t.Fatalf("deleteSection failed: %s", deleted.Message)
	}
}

func TestDeleteOfMissingEntityReportsFailureNotError(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	for _, path := range []string{
		"/Sections/deleteSection?id=ghost",
		"/Services/deleteService?id=ghost",
		"/items/deleteItem?id=ghost",
		"/items/deleteAttribute?id=ghost",
		"/Contacts/deleteContact?id=ghost",
		"/SocialMedias/deleteSocialMedia?id=ghost",
	} {
		resp, env := doJSON(t, ts, token, http.MethodDelete, path, "")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, resp.StatusCode)
		}
		if env.Success {
			t.Errorf("%s: expected success=false", path)
		}
	}
}

func TestSectionDeleteCascades(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	_, sec := doJSON(t, ts, token, http.MethodPost, "/Sections/addSection",
		`{"arTitle":"قسم","enTitle":"Section"}`)
	sectionID := dataID(t, sec)

	svc := doForm(t, ts, token, http.MethodPost, "/Services/addService", map[string]string{
		"sectionId":     sectionID,
		"arTitle":       "خدمة",
		"enTitle":       "Service",
		"thumbnailFile": "/uploads/existing_thumb.png",
	})
	if !svc.Success {
		t.Fatalf("addService failed: %s", svc.Message)
	}
	serviceID := dataID(t, svc)

	item := doForm(t, ts, token, http.MethodPost, "/Items/addItem", map[string]string{
		"serviceId":     serviceID,
		"arTitle":       "عنصر",
		"enTitle":       "Item",
		"thumbnailFile": "/uploads/existing_item.png",
	})
	if !item.Success {
		t.Fatalf("addItem failed: %s", item.Message)
	}

	_, deleted := doJSON(t, ts, token, http.MethodDelete, "/Sections/deleteSection?id="+sectionID, "")
	if !deleted.Success {
		t.Fatalf("deleteSection failed: %s", deleted.Message)
	}

	_, services := doJSON(t, ts, token, http.MethodGet, "/Services/getServices?all=true", "")
	if raw, _ := json.Marshal(services.Data); bytes.Contains(raw, []byte(serviceID)) {
		t.Fatal("service survived section delete")
	}
	_, items := doJSON(t, ts, token, http.MethodGet, "/Items/getItems?serviceId="+serviceID, "")
	if raw, _ := json.Marshal(items.Data); bytes.Contains(raw, []byte("Item")) {
		t.Fatal("item survived section delete")
	}
}

func TestServiceRequiresThumbnailOnCreate(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	_, sec := doJSON(t, ts, token, http.MethodPost, "/Sections/addSection",
		`{"arTitle":"قسم","enTitle":"Section"}`)
	sectionID := dataID(t, sec)

	env := doForm(t, ts, token, http.MethodPost, "/Services/addService", map[string]string{
		"sectionId": sectionID,
		"arTitle":   "خدمة",
		"enTitle":   "Service",
	})
	if env.Success {
		t.Fatal("expected failure without thumbnail")
	}
}

func TestVariantCannotParentAnotherService(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	_, sec := doJSON(t, ts, token, http.MethodPost, "/Sections/addSection",
		`{"arTitle":"قسم","enTitle":"Section"}`)
	sectionID := dataID(t, sec)

	base := map[string]string{
		"sectionId":     sectionID,
		"arTitle":       "أصل",
		"enTitle":       "Root",
		"thumbnailFile": "/uploads/a.png",
	}
	root := doForm(t, ts, token, http.MethodPost, "/Services/addService", base)
	rootID := dataID(t, root)

	child := doForm(t, ts, token, http.MethodPost, "/Services/addService", map[string]string{
		"sectionId":       sectionID,
		"arTitle":         "فرع",
		"enTitle":         "Variant",
		"thumbnailFile":   "/uploads/b.png",
		"parentServiceId": rootID,
	})
	childID := dataID(t, child)

	grandchild := doForm(t, ts, token, http.MethodPost, "/Services/addService", map[string]string{
		"sectionId":       sectionID,
		"arTitle":         "حفيد",
		"enTitle":         "Grandchild",
		"thumbnailFile":   "/uploads/c.png",
		"parentServiceId": childID,
	})
	if grandchild.Success {
		t.Fatal("expected failure when parent is already a variant")
	}
}

func TestUpdateServiceValidatesParent(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	_, sec := doJSON(t, ts, token, http.MethodPost, "/Sections/addSection",
		`{"arTitle":"قسم","enTitle":"Section"}`)
	sectionID := dataID(t, sec)

	addService := func(enTitle, parentID string) string {
		t.Helper()
		fields := map[string]string{
			"sectionId":     sectionID,
			"arTitle":       "خدمة",
			"enTitle":       enTitle,
			"thumbnailFile": "/uploads/t.png",
		}
		if parentID != "" {
			fields["parentServiceId"] = parentID
		}
		env := doForm(t, ts, token, http.MethodPost, "/Services/addService", fields)
		return dataID(t, env)
	}

	rootID := addService("Root", "")
	variantID := addService("Variant", rootID)
	otherID := addService("Other", "")

	update := func(id, parentID string) envelope {
		t.Helper()
		return doForm(t, ts, token, http.MethodPut, "/Services/updateService?id="+id, map[string]string{
			"arTitle":         "خدمة",
			"enTitle":         "Edited",
			"parentServiceId": parentID,
		})
	}

	if env := update(otherID, "ghost"); env.Success {
		t.Fatal("edit attached a service to a nonexistent parent")
	}
	if env := update(otherID, variantID); env.Success {
		t.Fatal("edit attached a service under a variant")
	}
	if env := update(rootID, otherID); env.Success {
		t.Fatal("edit turned a service with variants into a variant")
	}
	if env := update(otherID, otherID); env.Success {
		t.Fatal("edit made a service its own parent")
	}
	if env := update(otherID, rootID); !env.Success {
		t.Fatalf("legitimate reparent rejected: %s", env.Message)
	}
}

func TestAttributeBatchValidatesVariants(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	_, sec := doJSON(t, ts, token, http.MethodPost, "/Sections/addSection",
		`{"arTitle":"قسم","enTitle":"Section"}`)
	svc := doForm(t, ts, token, http.MethodPost, "/Services/addService", map[string]string{
		"sectionId":     dataID(t, sec),
		"arTitle":       "خدمة",
		"enTitle":       "Service",
		"thumbnailFile": "/uploads/t.png",
	})
	item := doForm(t, ts, token, http.MethodPost, "/Items/addItem", map[string]string{
		"serviceId":     dataID(t, svc),
		"arTitle":       "عنصر",
		"enTitle":       "Item",
		"thumbnailFile": "/uploads/i.png",
	})
	itemID := dataID(t, item)

	_, good := doJSON(t, ts, token, http.MethodPost, "/Items/addAttribute",
		`{"itemId":"`+itemID+`","attributes":[{"arName":"اللون","enName":"Color","singleValue":true,"value":"red"}]}`)
	if !good.Success {
		t.Fatalf("valid attribute batch failed: %s", good.Message)
	}

	_, missingValue := doJSON(t, ts, token, http.MethodPost, "/Items/addAttribute",
		`{"itemId":"`+itemID+`","attributes":[{"arName":"اللون","enName":"Color","singleValue":true}]}`)
	if missingValue.Success {
		t.Fatal("expected failure for single variant without a value")
	}

	_, halfDual := doJSON(t, ts, token, http.MethodPost, "/Items/addAttribute",
		`{"itemId":"`+itemID+`","attributes":[{"arName":"مادة","enName":"Material","arValue":"خشب"}]}`)
	if halfDual.Success {
		t.Fatal("expected failure for dual variant with one half")
	}

	_, orphan := doJSON(t, ts, token, http.MethodPost, "/Items/addAttribute",
		`{"itemId":"ghost","attributes":[{"arName":"اللون","enName":"Color","singleValue":true,"value":"red"}]}`)
	if orphan.Success {
		t.Fatal("expected failure for unknown item")
	}
}

func TestServicePaginationAndFiltering(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	_, sec := doJSON(t, ts, token, http.MethodPost, "/Sections/addSection",
		`{"arTitle":"قسم","enTitle":"Section"}`)
	sectionID := dataID(t, sec)

	for _, title := range []string{"Cleaning", "Painting", "Plumbing"} {
		env := doForm(t, ts, token, http.MethodPost, "/Services/addService", map[string]string{
			"sectionId":     sectionID,
			"arTitle":       title,
			"enTitle":       title,
			"thumbnailFile": "/uploads/t.png",
		})
		if !env.Success {
			t.Fatalf("addService %s failed: %s", title, env.Message)
		}
	}

	count := func(path string) int {
		_, env := doJSON(t, ts, token, http.MethodGet, path, "")
		raw, _ := json.Marshal(env.Data)
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return 0
		}
		return len(list)
	}

	if n := count("/Services/getServices?page=1&size=2"); n != 2 {
		t.Fatalf("page size ignored: got %d services", n)
	}
	if n := count("/Services/getServices?page=2&size=2"); n != 1 {
		t.Fatalf("second page wrong: got %d services", n)
	}
	if n := count("/Services/getServices?all=true"); n != 3 {
		t.Fatalf("all=true wrong: got %d services", n)
	}
	if n := count("/Services/getServices?enTitle=paint&all=true"); n != 1 {
		t.Fatalf("enTitle filter wrong: got %d services", n)
	}
}

func TestChangePasswordFlow(t *testing.T) {
	ts := newTestServer(t)

	_, verify := doJSON(t, ts, "", http.MethodPost, "/Authentication/verify",
		`{"email":"admin@melfak.local"}`)
	if !verify.Success {
		t.Fatalf("verify failed: %s", verify.Message)
	}

	_, wrongOtp := doJSON(t, ts, "", http.MethodPost, "/Authentication/changePassword",
		`{"email":"admin@melfak.local","otp":"0000","newPassword":"brandnew1"}`)
	if wrongOtp.Success {
		t.Fatal("expected failure for wrong otp")
	}

	_, changed := doJSON(t, ts, "", http.MethodPost, "/Authentication/changePassword",
		`{"email":"admin@melfak.local","otp":"1234","newPassword":"brandnew1"}`)
	if !changed.Success {
		t.Fatalf("changePassword failed: %s", changed.Message)
	}

	_, old := doJSON(t, ts, "", http.MethodPost, "/Authentication/login",
		`{"email":"admin@melfak.local","password":"admin123"}`)
	if old.Success {
		t.Fatal("old password still accepted")
	}
	_, fresh := doJSON(t, ts, "", http.MethodPost, "/Authentication/login",
		`{"email":"admin@melfak.local","password":"brandnew1"}`)
	if !fresh.Success {
		t.Fatalf("new password rejected: %s", fresh.Message)
	}
}
