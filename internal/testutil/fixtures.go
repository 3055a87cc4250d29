// internal/testutil/fixtures.go
package testutil

// Cuerpos de respuesta típicos del endpoint público de S3.

// FixtureListBucketBody es lo que devuelve un bucket listable anónimamente.
const FixtureListBucketBody = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>media</Name>
  <Prefix></Prefix>
  <Marker></Marker>
  <MaxKeys>1000</MaxKeys>
  <IsTruncated>false</IsTruncated>
  <Contents>
    <Key>index.html</Key>
    <Size>1024</Size>
  </Contents>
</ListBucketResult>`

// FixtureNoSuchBucketBody es la respuesta 404 de un bucket inexistente.
const FixtureNoSuchBucketBody = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchBucket</Code><Message>The specified bucket does not exist</Message><BucketName>nope</BucketName></Error>`

// FixtureAccessDeniedBody es la respuesta 403 de un bucket privado.
const FixtureAccessDeniedBody = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`

// FixtureHTMLBody no contiene ningún marcador.
const FixtureHTMLBody = `<!DOCTYPE html><html><head><title>Moved</title></head><body><p>Redirecting...</p></body></html>`

// FixtureBothMarkersBody contiene ambos marcadores.
const FixtureBothMarkersBody = `<Error><Code>Weird</Code></Error><ListBucketResult><Name>x</Name></ListBucketResult>`

// FixtureCandidates es una wordlist pequeña con ruido.
var FixtureCandidates = []string{
	"media",
	"  backups  ",
	"",
	"logs",
	"\t",
}
