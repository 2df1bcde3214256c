// Package mgmtserver emulates enough of the broker's management API for
// exercising the client end to end: vhost, queue, exchange, and binding
// CRUD plus the overview and aliveness probes. State is held in memory.
package mgmtserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/mux"
)

type Server struct {
	Router *mux.Router

	mu         sync.Mutex
	vhosts     map[string]map[string]interface{}
	queues     map[string]map[string]interface{}
	exchanges  map[string]map[string]interface{}
	bindings   map[string][]map[string]interface{}
	bindingSeq int

	// Listeners backs the overview document's listeners field.
	Listeners []map[string]interface{}
}

func NewServer() *Server {
	s := &Server{
		vhosts:    map[string]map[string]interface{}{},
		queues:    map[string]map[string]interface{}{},
		exchanges: map[string]map[string]interface{}{},
		bindings:  map[string][]map[string]interface{}{},
	}
	s.vhosts["/"] = map[string]interface{}{"name": "/"}

	router := mux.NewRouter()
	router.StrictSlash(true)
	router.UseEncodedPath()

	router.HandleFunc("/api/overview", s.overview).Methods(http.MethodGet)
	router.HandleFunc("/api/aliveness-test/{vhost}", s.alivenessTest).
		Methods(http.MethodGet)

	router.HandleFunc("/api/vhosts", s.listVhosts).Methods(http.MethodGet)
	router.HandleFunc("/api/vhosts/{vhost}", s.putVhost).Methods(http.MethodPut)
	router.HandleFunc("/api/vhosts/{vhost}", s.deleteVhost).
		Methods(http.MethodDelete)

	router.HandleFunc("/api/queues", s.listQueues).Methods(http.MethodGet)
	router.HandleFunc("/api/queues/{vhost}", s.listQueues).
		Methods(http.MethodGet)
	router.HandleFunc("/api/queues/{vhost}/{name}", s.getQueue).
		Methods(http.MethodGet)
	router.HandleFunc("/api/queues/{vhost}/{name}", s.putQueue).
		Methods(http.MethodPut)
	router.HandleFunc("/api/queues/{vhost}/{name}", s.deleteQueue).
		Methods(http.MethodDelete)
	router.HandleFunc("/api/queues/{vhost}/{name}/contents", s.purgeQueue).
		Methods(http.MethodDelete)

	router.HandleFunc("/api/exchanges", s.listExchanges).Methods(http.MethodGet)
	router.HandleFunc("/api/exchanges/{vhost}", s.listExchanges).
		Methods(http.MethodGet)
	router.HandleFunc("/api/exchanges/{vhost}/{name}", s.getExchange).
		Methods(http.MethodGet)
	router.HandleFunc("/api/exchanges/{vhost}/{name}", s.putExchange).
		Methods(http.MethodPut)
	router.HandleFunc("/api/exchanges/{vhost}/{name}", s.deleteExchange).
		Methods(http.MethodDelete)

	router.HandleFunc(
		"/api/bindings/{vhost}/e/{exchange}/q/{queue}",
		s.listQueueBindings,
	).Methods(http.MethodGet)
	router.HandleFunc(
		"/api/bindings/{vhost}/e/{exchange}/q/{queue}",
		s.createQueueBinding,
	).Methods(http.MethodPost)
	router.HandleFunc(
		"/api/bindings/{vhost}/e/{exchange}/q/{queue}/{propertiesKey}",
		s.deleteQueueBinding,
	).Methods(http.MethodDelete)

	s.Router = router
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// pathVar returns the named route variable with its percent-encoding
// undone. UseEncodedPath leaves vars encoded so that vhosts like "/"
// survive routing.
func pathVar(r *http.Request, name string) string {
	v, err := url.PathUnescape(mux.Vars(r)[name])
	if err != nil {
		return mux.Vars(r)[name]
	}
	return v
}

func (s *Server) overview(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"listeners": s.Listeners,
	})
}

func (s *Server) alivenessTest(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vhosts[pathVar(r, "vhost")]; !ok {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

func (s *Server) listVhosts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vhosts := []map[string]interface{}{}
	for _, vhost := range s.vhosts {
		vhosts = append(vhosts, vhost)
	}
	writeJSON(w, http.StatusOK, vhosts)
}

func (s *Server) putVhost(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := pathVar(r, "vhost")
	s.vhosts[name] = map[string]interface{}{"name": name}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) deleteVhost(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := pathVar(r, "vhost")
	if _, ok := s.vhosts[name]; !ok {
		writeNotFound(w)
		return
	}
	delete(s.vhosts, name)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listQueues(w http.ResponseWriter, r *http.Request) {
	s.listResources(w, r, s.queues)
}

func (s *Server) getQueue(w http.ResponseWriter, r *http.Request) {
	s.getResource(w, r, s.queues)
}

func (s *Server) putQueue(w http.ResponseWriter, r *http.Request) {
	s.putResource(w, r, s.queues)
}

func (s *Server) deleteQueue(w http.ResponseWriter, r *http.Request) {
	s.deleteResource(w, r, s.queues)
}

func (s *Server) purgeQueue(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := resourceKey(pathVar(r, "vhost"), pathVar(r, "name"))
	queue, ok := s.queues[key]
	if !ok {
		writeNotFound(w)
		return
	}
	queue["messages"] = 0
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listExchanges(w http.ResponseWriter, r *http.Request) {
	s.listResources(w, r, s.exchanges)
}

func (s *Server) getExchange(w http.ResponseWriter, r *http.Request) {
	s.getResource(w, r, s.exchanges)
}

func (s *Server) putExchange(w http.ResponseWriter, r *http.Request) {
	s.putResource(w, r, s.exchanges)
}

func (s *Server) deleteExchange(w http.ResponseWriter, r *http.Request) {
	s.deleteResource(w, r, s.exchanges)
}

func (s *Server) listQueueBindings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := bindingKey(r)
	bindings := s.bindings[key]
	if bindings == nil {
		bindings = []map[string]interface{}{}
	}
	writeJSON(w, http.StatusOK, bindings)
}

func (s *Server) createQueueBinding(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body := map[string]interface{}{}
	json.NewDecoder(r.Body).Decode(&body) // nolint: errcheck
	s.bindingSeq++
	propertiesKey := fmt.Sprintf("props-%d", s.bindingSeq)
	key := bindingKey(r)
	binding := map[string]interface{}{
		"vhost":            pathVar(r, "vhost"),
		"source":           pathVar(r, "exchange"),
		"destination":      pathVar(r, "queue"),
		"destination_type": "queue",
		"routing_key":      body["routing_key"],
		"arguments":        body["arguments"],
		"properties_key":   propertiesKey,
	}
	s.bindings[key] = append(s.bindings[key], binding)
	w.Header().Set(
		"Location",
		fmt.Sprintf("%s/%s", r.URL.EscapedPath(), propertiesKey),
	)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) deleteQueueBinding(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := bindingKey(r)
	propertiesKey := pathVar(r, "propertiesKey")
	for i, binding := range s.bindings[key] {
		if binding["properties_key"] == propertiesKey {
			s.bindings[key] = append(
				s.bindings[key][:i],
				s.bindings[key][i+1:]...,
			)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeNotFound(w)
}

func (s *Server) listResources(
	w http.ResponseWriter,
	r *http.Request,
	store map[string]map[string]interface{},
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vhost, scoped := mux.Vars(r)["vhost"]
	if scoped {
		vhost = pathVar(r, "vhost")
	}
	resources := []map[string]interface{}{}
	for _, resource := range store {
		if scoped && resource["vhost"] != vhost {
			continue
		}
		resources = append(resources, resource)
	}
	writeJSON(w, http.StatusOK, resources)
}

func (s *Server) getResource(
	w http.ResponseWriter,
	r *http.Request,
	store map[string]map[string]interface{},
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resource, ok := store[resourceKey(pathVar(r, "vhost"), pathVar(r, "name"))]
	if !ok {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, resource)
}

func (s *Server) putResource(
	w http.ResponseWriter,
	r *http.Request,
	store map[string]map[string]interface{},
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vhost := pathVar(r, "vhost")
	name := pathVar(r, "name")
	resource := map[string]interface{}{}
	json.NewDecoder(r.Body).Decode(&resource) // nolint: errcheck
	resource["vhost"] = vhost
	resource["name"] = name
	store[resourceKey(vhost, name)] = resource
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) deleteResource(
	w http.ResponseWriter,
	r *http.Request,
	store map[string]map[string]interface{},
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := resourceKey(pathVar(r, "vhost"), pathVar(r, "name"))
	if _, ok := store[key]; !ok {
		writeNotFound(w)
		return
	}
	delete(store, key)
	w.WriteHeader(http.StatusNoContent)
}

func resourceKey(vhost, name string) string {
	return fmt.Sprintf("%s/%s", vhost, name)
}

func bindingKey(r *http.Request) string {
	return fmt.Sprintf(
		"%s/e/%s/q/%s",
		pathVar(r, "vhost"),
		pathVar(r, "exchange"),
		pathVar(r, "queue"),
	)
}

func writeJSON(w http.ResponseWriter, statusCode int, obj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(obj) // nolint: errcheck
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"error":  "Object Not Found",
		"reason": "Not Found",
	})
}
