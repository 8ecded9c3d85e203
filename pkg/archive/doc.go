// pkg/archive/doc.go
package archive

/*
Package archive reads the package archive formats instar accepts.

The file name selects the decoder and carries the package name: the
base name minus its suffix. Recognized suffixes:

  - .tar.gz   gzip-compressed tar
  - .tar.xz   xz-compressed tar
  - .cpio.gz  gzip-compressed cpio, the rpm payload format
  - .nar      Nix archive

Every format is presented through the same Entry stream so callers
walk a tarball and a NAR with identical code:

    r, err := archive.Open("hello-1.0.tar.gz")
    if err != nil {
        return err
    }
    defer r.Close()

    for {
        entry, err := r.Next()
        if err == io.EOF {
            break
        }
        if err != nil {
            return err
        }
        // entry.Path, entry.Mode, entry.Body ...
    }

Entries arrive in archive order. Producing tools may omit directory
entries, so callers create parent directories as needed.
*/
